package handler

import (
	"context"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/infrastructure/cache"
	"jobscout/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unconfigured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	redisStatus := "ok"
	if h.redis == nil {
		redisStatus = "unconfigured"
	} else if err := h.redis.Ping(ctx); err != nil {
		redisStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return response.Success(c, status, response.MessageOK, map[string]string{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
