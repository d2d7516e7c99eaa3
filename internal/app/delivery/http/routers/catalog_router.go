package routers

import (
	"tmdscreen-service/internal/app/delivery/http/middlewares"
	"tmdscreen-service/internal/app/services/core/catalogs"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalogs.CatalogController) {
	router.Get("/questions", catalogController.ListQuestions)
	router.Get("/codes", catalogController.ListCodes)
}
