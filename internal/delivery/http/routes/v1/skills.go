package v1

import (
	"jobscout/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterSkills(r fiber.Router, skillHandler *handler.SkillHandler) {
	if r == nil {
		return
	}
	if skillHandler == nil {
		return
	}

	skillHandler.RegisterRoutes(r)
}
