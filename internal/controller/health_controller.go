package controller

import (
	"time"

	"medichat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	environment string
}

func NewHealthController(environment string) IHealthController {
	return &healthController{environment: environment}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Service healthy", fiber.Map{
		"status":      "ok",
		"environment": c.environment,
		"datetime":    time.Now().UTC().Format(time.RFC3339),
	}))
}
