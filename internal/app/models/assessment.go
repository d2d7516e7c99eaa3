package models

import (
	"time"

	"tmdscreen-service/internal/app/services/core/engine"
)

type Assessment struct {
	ID                   string                   `json:"id" bson:"_id"`
	ProtocolVariant      string                   `json:"protocol_variant" bson:"protocol_variant"`
	RespondentType       string                   `json:"respondent_type" bson:"respondent_type"`
	RiskTier             string                   `json:"risk_tier" bson:"risk_tier"`
	ManualReviewRequired bool                     `json:"manual_review_required" bson:"manual_review_required"`
	Result               *engine.AssessmentResult `json:"result" bson:"result"`
	CreatedAt            time.Time                `json:"created_at" bson:"created_at"`
}
