package handler

import (
	"errors"
	"strconv"
	"strings"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.JobRankingUsecase
}

func NewRecommendationHandler(uc usecase.JobRankingUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.HandleRecommendations)
	r.Get("/:id/compatibility", h.HandleCompatibility)
}

func (h *RecommendationHandler) HandleRecommendations(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	minScore, err := parseQueryFloat(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.uc.GetRecommendations(c.Context(), userID, usecase.RecommendationParams{
		Limit:    limit,
		Offset:   offset,
		MinScore: minScore,
	})
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	out := make([]dto.CompatibilityResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, compatibilityResponse(r))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *RecommendationHandler) HandleCompatibility(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ranked, err := h.uc.Compatibility(c.Context(), userID, jobID)
	if err != nil {
		return mapRankingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, compatibilityResponse(ranked))
}

func compatibilityResponse(r usecase.RankedJob) dto.CompatibilityResponse {
	return dto.CompatibilityResponse{
		Job:                 jobResponseFromRow(r.Job, r.SkillIDs),
		Score:               r.Score,
		OverqualifiedSkills: r.OverqualifiedSkills,
		OverqualifiedEdu:    r.OverqualifiedEdu,
		OverqualifiedYears:  r.OverqualifiedYears,
	}
}

func mapRankingUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileEmpty):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Profile has no skills, education or experience", nil, err)
	case errors.Is(err, usecase.ErrNoJobsFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No jobs found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryFloat(c fiber.Ctx, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
