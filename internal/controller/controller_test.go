package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"amdlingo-be/internal/pkg/logger"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/repository/memory"
	"amdlingo-be/internal/service"
	"amdlingo-be/pkg/ai/document"
	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/worker"
	"amdlingo-be/pkg/llm/mock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	synthesizer := document.NewSynthesizer(mock.NewProvider(), document.DefaultSettings(), nil)
	dispatcher := worker.NewDispatcher(synthesizer, nil)
	router := master.NewRouter(nil, nil)
	sessions := memory.NewSessionHistoryRepository(time.Minute)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")

	NewHealthController("mock", "memory").RegisterRoutes(api)
	NewMasterController(service.NewMasterService(router)).RegisterRoutes(api)
	NewWorkerController(service.NewWorkerService(dispatcher, synthesizer)).RegisterRoutes(api)
	NewAnalysisController(service.NewAnalysisService(router, dispatcher, sessions, nil, logger.NewNop())).RegisterRoutes(api)
	NewSessionController(service.NewSessionService(sessions)).RegisterRoutes(api)
	return app
}

// do sends body (if any) as JSON and decodes the envelope into out.
func do(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
