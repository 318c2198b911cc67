package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Text string `validate:"required"`
	Mode string `validate:"omitempty,oneof=document code"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Text: "hi", Mode: "code"}))

	err := ValidateRequest(sampleRequest{Mode: "essay"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "is required", vErr.Fields["Text"])
	assert.Equal(t, "must be one of document code", vErr.Fields["Mode"])
}

func TestErrorHandlerMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", &ValidationError{Fields: map[string]string{"Text": "is required"}}, 400},
		{"fiber error", fiber.NewError(fiber.StatusNotFound, "missing"), 404},
		{"upstream", Upstream(errors.New("vllm down")), 502},
		{"bad request", BadRequest("unknown mode %q", "essay"), 400},
		{"malformed json", json.Unmarshal([]byte(`{"text":`), &sampleRequest{}), 400},
		{"other", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body BaseResponse[any]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestUpstream(t *testing.T) {
	cause := errors.New("dial tcp")
	err := Upstream(cause)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Upstream(nil))
}

func TestBadRequest(t *testing.T) {
	err := BadRequest("unknown mode %q", "essay")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, `bad request: unknown mode "essay"`, err.Error())
}
