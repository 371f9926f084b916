package handler

import (
	"errors"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/domain/user"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileUpdateRequest struct {
	SkillIDs  []uuid.UUID `json:"skill_ids"`
	Education string      `json:"education"`
	YearsExp  int         `json:"years_exp"`
	City      string      `json:"city"`
	State     string      `json:"state"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me/profile", h.HandleGetProfile)
	r.Put("/me/profile", h.HandleUpdateProfile)
}

func (h *ProfileHandler) HandleGetProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(p))
}

func (h *ProfileHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req profileUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateProfile(c.Context(), userID, usecase.ProfileUpdateInput{
		SkillIDs:  req.SkillIDs,
		Education: req.Education,
		YearsExp:  req.YearsExp,
		City:      req.City,
		State:     req.State,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profileResponse(p))
}

func profileResponse(p user.Profile) dto.ProfileResponse {
	skillIDs := p.SkillIDs
	if skillIDs == nil {
		skillIDs = []uuid.UUID{}
	}
	return dto.ProfileResponse{
		UserID:    p.UserID,
		SkillIDs:  skillIDs,
		Education: p.Education,
		YearsExp:  p.YearsExp,
		City:      p.City,
		State:     p.State,
	}
}

func mapProfileUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfile):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid profile", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
