package handler

import (
	"errors"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.HandleListSkills)
	r.Post("/", h.HandleCreateSkill)
}

func (h *SkillHandler) HandleListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		aliases := s.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		out = append(out, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category, Aliases: aliases})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SkillHandler) HandleCreateSkill(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.uc.CreateSkill(c.Context(), usecase.CreateSkillInput{
		Name:     req.Name,
		Category: req.Category,
		Aliases:  req.Aliases,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSkillExists):
			return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
		case errors.Is(err, usecase.ErrInvalidSkill):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	aliases := s.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillResponse{
		ID: s.ID, Name: s.Name, Category: s.Category, Aliases: aliases,
	})
}
