package controller

import (
	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/service"
	"amdlingo-be/pkg/ai/mode"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	// Analyze returns a handler whose requests default to forcedMode.
	Analyze(forcedMode mode.Mode) fiber.Handler
}

type analysisController struct {
	service service.IAnalysisService
}

func NewAnalysisController(service service.IAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	r.Post("/analyze/document", c.Analyze(mode.Document))
	r.Post("/analyze/code", c.Analyze(mode.Code))
	r.Post("/analyze/error", c.Analyze(mode.Error))
	r.Post("/convert/hipify", c.Analyze(mode.Hipify))
	r.Post("/lookup/api", c.Analyze(mode.API))
}

func (c *analysisController) Analyze(forcedMode mode.Mode) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var req dto.AnalyzeRequest
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}

		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}

		res, err := c.service.Analyze(ctx.Context(), &req, forcedMode, ctx.Path())
		if err != nil {
			return err
		}

		return ctx.JSON(serverutils.SuccessResponse("Success analyze request", res))
	}
}
