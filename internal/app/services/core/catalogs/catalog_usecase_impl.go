package catalogs

import (
	"context"

	"tmdscreen-service/internal/app/contracts"
	"tmdscreen-service/internal/app/services/core/engine"
	"tmdscreen-service/internal/pkg/dto/responses"
	"tmdscreen-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	Log *zap.Logger
}

func NewCatalogUsecase(logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{Log: logger}
}

func (uc *catalogUsecase) ListQuestions(ctx context.Context, category string) (*responses.QuestionCatalog, error) {
	if category == "" {
		questions := engine.Questions()
		return &responses.QuestionCatalog{
			Total:     len(questions),
			Questions: questions,
		}, nil
	}

	if !knownCategory(engine.Category(category)) {
		return nil, exceptions.ErrUnknownCatalogCategory(category)
	}
	questions := engine.QuestionsForCategory(engine.Category(category))
	return &responses.QuestionCatalog{
		Total:     len(questions),
		Questions: questions,
	}, nil
}

func (uc *catalogUsecase) ListCodes(ctx context.Context) (*responses.CodeCatalog, error) {
	codes := engine.Codes()
	return &responses.CodeCatalog{
		Total: len(codes),
		Codes: codes,
	}, nil
}

func knownCategory(category engine.Category) bool {
	for _, c := range engine.Categories() {
		if c == category {
			return true
		}
	}
	return false
}
