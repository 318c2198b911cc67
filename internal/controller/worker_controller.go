package controller

import (
	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWorkerController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Document(ctx *fiber.Ctx) error
}

type workerController struct {
	service service.IWorkerService
}

func NewWorkerController(service service.IWorkerService) IWorkerController {
	return &workerController{service: service}
}

func (c *workerController) RegisterRoutes(r fiber.Router) {
	r.Post("/worker/:mode", c.Generate)
	r.Post("/llm/document", c.Document)
}

func (c *workerController) Generate(ctx *fiber.Ctx) error {
	var req dto.WorkerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.Context(), ctx.Params("mode"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate worker response", res))
}

func (c *workerController) Document(ctx *fiber.Ctx) error {
	var req dto.DocumentLLMRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Document(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success synthesize document", res))
}
