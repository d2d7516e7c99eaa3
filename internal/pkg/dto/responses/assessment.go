package responses

import (
	"tmdscreen-service/internal/app/services/core/engine"
)

type Assessment struct {
	AssessmentID string `json:"assessment_id"`
	ShareToken   string `json:"share_token,omitempty"`
	*engine.AssessmentResult
}

type DryRun struct {
	Validation    engine.ValidationReport `json:"validation"`
	CodeConflicts []string                `json:"code_conflicts,omitempty"`
}
