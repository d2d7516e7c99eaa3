package contracts

import "context"

// TelemetryPublisher emits pipeline events for downstream analytics. Events
// carry identifiers and aggregates only, never answer values.
type TelemetryPublisher interface {
	PublishAssessmentStarted(ctx context.Context, assessmentID, protocolVariant string, answerCount int) error
	PublishAssessmentCompleted(ctx context.Context, assessmentID, riskTier string, manualReviewRequired bool, durationMs int64) error
}
