package routers

import (
	"tmdscreen-service/internal/app/delivery/http/middlewares"
	"tmdscreen-service/internal/app/services/core/assessments"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	router.Post("/", assessmentController.SubmitAssessment)
	router.With(middlewares.APIKeyAuth).Post("/dry-run", assessmentController.DryRunAssessment)
	router.Get("/shared/{share_token}", assessmentController.FindAssessmentByShareToken)
	router.With(middlewares.ClinicianAuth).Get("/{assessment_id}", assessmentController.FindAssessmentByID)
}
