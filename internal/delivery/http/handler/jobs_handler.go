package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/repository"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.HandleListJobs)
	r.Get("/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{Limit: limit, Offset: offset})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobResponse, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, jobResponseFromItem(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobListResponse{Jobs: out, Total: res.Total})
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponseFromItem(item))
}

func jobResponseFromItem(it usecase.JobListItem) dto.JobResponse {
	return jobResponseFromRow(it.JobListRow, it.SkillIDs)
}

func jobResponseFromRow(row repository.JobListRow, skillIDs []uuid.UUID) dto.JobResponse {
	posted := ""
	if row.PostedAt != nil && !row.PostedAt.IsZero() {
		posted = row.PostedAt.UTC().Format(time.RFC3339)
	}
	if skillIDs == nil {
		skillIDs = []uuid.UUID{}
	}
	return dto.JobResponse{
		JobID:          row.ID,
		Title:          row.Title,
		CompanyName:    row.Company,
		Location:       row.Location,
		EmploymentType: row.EmploymentType,
		Description:    row.Description,
		URL:            row.URL,
		MinSalary:      row.MinSalary,
		MaxSalary:      row.MaxSalary,
		IsRemote:       row.IsRemote,
		Education:      row.Education,
		YearsExp:       row.YearsExp,
		SkillIDs:       skillIDs,
		PostedDate:     posted,
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return v, nil
}
