package contracts

import (
	"context"

	"tmdscreen-service/internal/app/models"
	"tmdscreen-service/internal/pkg/dto/requests"
	"tmdscreen-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.Assessment, error)
	DryRunAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.DryRun, error)
	FindAssessmentByID(ctx context.Context, assessmentID string) (*responses.Assessment, error)
	FindAssessmentByShareToken(ctx context.Context, shareToken string) (*responses.Assessment, error)
}

type AssessmentRepository interface {
	InsertAssessment(ctx context.Context, assessment *models.Assessment) error
	FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
}
