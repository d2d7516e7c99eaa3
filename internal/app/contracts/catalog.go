package contracts

import (
	"context"

	"tmdscreen-service/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	ListQuestions(ctx context.Context, category string) (*responses.QuestionCatalog, error)
	ListCodes(ctx context.Context) (*responses.CodeCatalog, error)
}
