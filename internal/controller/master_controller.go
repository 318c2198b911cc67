package controller

import (
	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMasterController interface {
	RegisterRoutes(r fiber.Router)
	Route(ctx *fiber.Ctx) error
}

type masterController struct {
	service service.IMasterService
}

func NewMasterController(service service.IMasterService) IMasterController {
	return &masterController{service: service}
}

func (c *masterController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/master")
	h.Post("/route", c.Route)
}

func (c *masterController) Route(ctx *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Route(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success route request", res))
}
