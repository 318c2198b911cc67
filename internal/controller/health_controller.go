package controller

import (
	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	provider string
	history  string
}

func NewHealthController(provider, history string) IHealthController {
	return &healthController{provider: provider, history: history}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/healthz", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", dto.HealthResponse{
		Status:   "ok",
		Provider: c.provider,
		History:  c.history,
	}))
}
