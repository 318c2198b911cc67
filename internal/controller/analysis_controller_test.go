package controller

import (
	"testing"

	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisController_Endpoints(t *testing.T) {
	tests := []struct {
		path     string
		body     string
		wantMode string
	}{
		{"/api/analyze/document", `{"text":"summarize the HIP guide","session_id":"s1"}`, "document"},
		{"/api/analyze/code", `{"text":"int main() {}","session_id":"s1"}`, "code"},
		{"/api/analyze/error", `{"text":"it crashed","session_id":"s1"}`, "error"},
		{"/api/convert/hipify", `{"text":"cudaMemcpy(a, b, n, kind);","session_id":"s1"}`, "hipify"},
		{"/api/lookup/api", `{"text":"hipMemcpy","session_id":"s1"}`, "api"},
		{"/api/lookup/api", `{"text":"hipMemcpy","session_id":"s1","explicit_mode":"code"}`, "code"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" "+tt.wantMode, func(t *testing.T) {
			app := newTestApp(t)

			var res serverutils.BaseResponse[dto.BackendResponse]
			code := do(t, app, "POST", tt.path, tt.body, &res)

			require.Equal(t, 200, code)
			assert.Equal(t, tt.wantMode, res.Data.Mode)
			assert.Equal(t, "s1", res.Data.SessionID)
		})
	}
}

func TestAnalysisController_RejectsUnknownExplicitMode(t *testing.T) {
	app := newTestApp(t)

	var res serverutils.BaseResponse[any]
	code := do(t, app, "POST", "/api/analyze/code", `{"text":"x","explicit_mode":"essay"}`, &res)
	assert.Equal(t, 400, code)
}

func TestAnalysisController_HistoryIsVisibleThroughSessionAPI(t *testing.T) {
	app := newTestApp(t)

	code := do(t, app, "POST", "/api/lookup/api", `{"text":"hipFree","session_id":"s9"}`, nil)
	require.Equal(t, 200, code)

	var res serverutils.BaseResponse[dto.SessionHistoryResponse]
	code = do(t, app, "GET", "/api/session/s9/history", "", &res)
	require.Equal(t, 200, code)
	require.Len(t, res.Data.History, 2)
	assert.Equal(t, "user", res.Data.History[0].Role)
	assert.Equal(t, "assistant", res.Data.History[1].Role)
}
