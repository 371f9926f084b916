package v1

import (
	"jobscout/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler, recommendationHandler *handler.RecommendationHandler) {
	if r == nil {
		return
	}
	if jobsHandler == nil {
		return
	}

	// Recommendation routes first so "/recommendations" never collides
	// with the "/:id" job detail route.
	if recommendationHandler != nil {
		recommendationHandler.RegisterRoutes(r)
	}
	jobsHandler.RegisterRoutes(r)
}
