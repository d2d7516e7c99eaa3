package routers

import (
	"time"

	"tmdscreen-service/internal/app/config"
	"tmdscreen-service/internal/app/delivery/http/middlewares"
	"tmdscreen-service/internal/app/services/core/assessments"
	"tmdscreen-service/internal/app/services/core/catalogs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	assessmentController *assessments.AssessmentController,
	catalogController *catalogs.CatalogController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/assessments", func(r chi.Router) {
			attachAssessmentRoutes(r, middlewares, assessmentController)
		})

		r.Route("/catalogs", func(r chi.Router) {
			attachCatalogRoutes(r, middlewares, catalogController)
		})
	})
}
