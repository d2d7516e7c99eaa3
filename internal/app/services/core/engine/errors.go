package engine

import "fmt"

// InputError reports an answer that cannot be accepted against the question
// catalog. It is raised before any scoring runs; a submission is never
// partially scored.
type InputError struct {
	QuestionID string
	Reason     string
}

func (e *InputError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("invalid answer set: %s", e.Reason)
	}
	return fmt.Sprintf("invalid answer for question %s: %s", e.QuestionID, e.Reason)
}

// ValidationFailure is returned by Run under strict validation when the
// protocol validator reports the submission invalid. It carries the full
// report so the caller can surface actionable detail.
type ValidationFailure struct {
	Report *ValidationReport
}

func (e *ValidationFailure) Error() string {
	failed := 0
	for _, r := range e.Report.Results {
		if !r.Passed && r.Severity == SeverityError {
			failed++
		}
	}
	return fmt.Sprintf("protocol validation failed: %d required rule(s) not satisfied", failed)
}

// CatalogError reports an inconsistent scoring configuration or code catalog.
// It is only ever raised at construction time; catalogs are static and
// validated once.
type CatalogError struct {
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog integrity: %s", e.Reason)
}
