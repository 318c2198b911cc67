package controller

import (
	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Append(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Post("", c.Create)
	h.Post("/create", c.Create)
	h.Post("/append", c.Append)
	h.Get("/history", c.History)
	h.Get("/:id/history", c.History)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.SessionCreateRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Append(ctx *fiber.Ctx) error {
	var req dto.SessionAppendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Append(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success append session entry", res))
}

func (c *sessionController) History(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		id = ctx.Query("session_id")
	}

	res, err := c.service.History(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session history", res))
}
