package assessments

import (
	"context"
	"errors"
	"time"

	"tmdscreen-service/internal/app/config"
	"tmdscreen-service/internal/app/contracts"
	"tmdscreen-service/internal/app/models"
	"tmdscreen-service/internal/app/services/core/engine"
	"tmdscreen-service/internal/pkg/constvars"
	"tmdscreen-service/internal/pkg/dto/requests"
	"tmdscreen-service/internal/pkg/dto/responses"
	"tmdscreen-service/internal/pkg/exceptions"
	"tmdscreen-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	Engine               *engine.Engine
	AssessmentRepository contracts.AssessmentRepository
	RedisRepository      contracts.RedisRepository
	TelemetryPublisher   contracts.TelemetryPublisher
	ReportArchive        contracts.ReportArchive
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewAssessmentUsecase(
	scoringEngine *engine.Engine,
	assessmentRepository contracts.AssessmentRepository,
	redisRepository contracts.RedisRepository,
	telemetryPublisher contracts.TelemetryPublisher,
	reportArchive contracts.ReportArchive,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	return &assessmentUsecase{
		Engine:               scoringEngine,
		AssessmentRepository: assessmentRepository,
		RedisRepository:      redisRepository,
		TelemetryPublisher:   telemetryPublisher,
		ReportArchive:        reportArchive,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *assessmentUsecase) SubmitAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.Assessment, error) {
	start := time.Now()
	requestID := utils.GetRequestID(ctx)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err, exceptions.FormatFirstValidationError(err))
	}

	set, err := uc.parseAnswers(request)
	if err != nil {
		return nil, err
	}

	assessmentID := uuid.NewString()
	uc.Log.Info("Assessment submission received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingProtocolVariantKey, request.ProtocolVariant),
		zap.Int(constvars.LoggingAnswerCountKey, set.AnsweredCount()),
	)

	if err := uc.TelemetryPublisher.PublishAssessmentStarted(ctx, assessmentID, request.ProtocolVariant, set.AnsweredCount()); err != nil {
		uc.Log.Warn("Telemetry publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	result, err := uc.Engine.Run(set, engine.ProtocolVariant(request.ProtocolVariant), uc.InternalConfig.BuildEngineOptions())
	if err != nil {
		return nil, mapEngineError(err)
	}

	assessment := &models.Assessment{
		ID:                   assessmentID,
		ProtocolVariant:      request.ProtocolVariant,
		RespondentType:       respondentTypeOrDefault(request.RespondentType),
		RiskTier:             string(result.Composite.RiskTier),
		ManualReviewRequired: result.ManualReviewRequired,
		Result:               result,
		CreatedAt:            time.Now().UTC(),
	}
	if err := uc.AssessmentRepository.InsertAssessment(ctx, assessment); err != nil {
		return nil, err
	}

	uc.archiveReport(ctx, requestID, assessmentID, result)

	response := &responses.Assessment{
		AssessmentID:     assessmentID,
		AssessmentResult: result,
	}

	if assessment.RespondentType == constvars.RespondentTypeGuest {
		shareToken, err := uc.mintShareToken(ctx, assessmentID)
		if err != nil {
			return nil, err
		}
		response.ShareToken = shareToken
	}

	durationMs := time.Since(start).Milliseconds()
	if err := uc.TelemetryPublisher.PublishAssessmentCompleted(ctx, assessmentID, assessment.RiskTier, assessment.ManualReviewRequired, durationMs); err != nil {
		uc.Log.Warn("Telemetry publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("Assessment processed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingRiskTierKey, assessment.RiskTier),
		zap.Bool(constvars.LoggingManualReviewKey, assessment.ManualReviewRequired),
		zap.Int64(constvars.LoggingDurationMsKey, durationMs),
	)

	return response, nil
}

// DryRunAssessment runs validation and code-conflict checks without
// persisting or emitting anything. Strict mode is disabled so callers see
// the full report even when required rules fail.
func (uc *assessmentUsecase) DryRunAssessment(ctx context.Context, request *requests.SubmitAssessment) (*responses.DryRun, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err, exceptions.FormatFirstValidationError(err))
	}

	set, err := uc.parseAnswers(request)
	if err != nil {
		return nil, err
	}

	opts := uc.InternalConfig.BuildEngineOptions()
	opts.StrictValidation = false
	result, err := uc.Engine.Run(set, engine.ProtocolVariant(request.ProtocolVariant), opts)
	if err != nil {
		return nil, mapEngineError(err)
	}

	return &responses.DryRun{
		Validation:    *result.Validation,
		CodeConflicts: engine.CheckCodeConflicts(result.Mapping),
	}, nil
}

func (uc *assessmentUsecase) FindAssessmentByID(ctx context.Context, assessmentID string) (*responses.Assessment, error) {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}
	return &responses.Assessment{
		AssessmentID:     assessment.ID,
		AssessmentResult: assessment.Result,
	}, nil
}

func (uc *assessmentUsecase) FindAssessmentByShareToken(ctx context.Context, shareToken string) (*responses.Assessment, error) {
	assessmentID, err := uc.RedisRepository.Get(ctx, constvars.RedisShareTokenKeyPrefix+shareToken)
	if err != nil {
		return nil, err
	}
	if assessmentID == "" {
		return nil, exceptions.ErrShareTokenExpired(nil)
	}
	return uc.FindAssessmentByID(ctx, assessmentID)
}

func (uc *assessmentUsecase) parseAnswers(request *requests.SubmitAssessment) (*engine.AnswerSet, error) {
	raw := make([]engine.RawAnswer, 0, len(request.Answers))
	for _, answer := range request.Answers {
		raw = append(raw, engine.RawAnswer{
			QuestionID: answer.QuestionID,
			Value:      answer.Value,
		})
	}
	set, err := engine.ParseAnswerSet(raw)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return set, nil
}

func (uc *assessmentUsecase) mintShareToken(ctx context.Context, assessmentID string) (string, error) {
	shareToken := uuid.NewString()
	expiry := time.Duration(uc.InternalConfig.Assessment.ShareTokenExpiryInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisShareTokenKeyPrefix+shareToken, assessmentID, expiry); err != nil {
		return "", err
	}
	return shareToken, nil
}

// archiveReport is best effort. A failed archive must not fail a submission
// that is already persisted.
func (uc *assessmentUsecase) archiveReport(ctx context.Context, requestID, assessmentID string, result *engine.AssessmentResult) {
	report, err := json.Marshal(result)
	if err != nil {
		uc.Log.Warn("Report archive failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return
	}
	if err := uc.ReportArchive.StoreReport(ctx, assessmentID, report); err != nil {
		uc.Log.Warn("Report archive failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
	}
}

func mapEngineError(err error) error {
	var inputErr *engine.InputError
	if errors.As(err, &inputErr) {
		return exceptions.ErrAssessmentInput(inputErr)
	}
	var validationFailure *engine.ValidationFailure
	if errors.As(err, &validationFailure) {
		return exceptions.ErrProtocolValidation(validationFailure)
	}
	return err
}

func respondentTypeOrDefault(respondentType string) string {
	if respondentType == "" {
		return constvars.RespondentTypeGuest
	}
	return respondentType
}
