package routes

import (
	"jobscout/internal/config"
	"jobscout/internal/database"
	v1 "jobscout/internal/delivery/http/routes/v1"
	"jobscout/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis)
}
