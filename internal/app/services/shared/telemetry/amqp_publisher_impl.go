package telemetry

import (
	"context"
	"time"

	"tmdscreen-service/internal/app/contracts"
	"tmdscreen-service/internal/pkg/constvars"
	"tmdscreen-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type amqpPublisher struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewAmqpPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.TelemetryPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &amqpPublisher{
		Channel: channel,
		Queue:   queue,
	}, nil
}

type assessmentStartedEvent struct {
	Event           string    `json:"event"`
	AssessmentID    string    `json:"assessment_id"`
	ProtocolVariant string    `json:"protocol_variant"`
	AnswerCount     int       `json:"answer_count"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type assessmentCompletedEvent struct {
	Event                string    `json:"event"`
	AssessmentID         string    `json:"assessment_id"`
	RiskTier             string    `json:"risk_tier"`
	ManualReviewRequired bool      `json:"manual_review_required"`
	DurationMs           int64     `json:"duration_ms"`
	OccurredAt           time.Time `json:"occurred_at"`
}

func (p *amqpPublisher) PublishAssessmentStarted(ctx context.Context, assessmentID, protocolVariant string, answerCount int) error {
	return p.publish(ctx, assessmentStartedEvent{
		Event:           "assessment.started",
		AssessmentID:    assessmentID,
		ProtocolVariant: protocolVariant,
		AnswerCount:     answerCount,
		OccurredAt:      time.Now().UTC(),
	})
}

func (p *amqpPublisher) PublishAssessmentCompleted(ctx context.Context, assessmentID, riskTier string, manualReviewRequired bool, durationMs int64) error {
	return p.publish(ctx, assessmentCompletedEvent{
		Event:                "assessment.completed",
		AssessmentID:         assessmentID,
		RiskTier:             riskTier,
		ManualReviewRequired: manualReviewRequired,
		DurationMs:           durationMs,
		OccurredAt:           time.Now().UTC(),
	})
}

func (p *amqpPublisher) publish(ctx context.Context, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrPublishTelemetry(err)
	}
	return nil
}
