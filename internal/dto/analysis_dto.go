package dto

import "amdlingo-be/pkg/ai/master"

// AnalyzeRequest is the body of the /analyze, /convert and /lookup
// endpoints. SessionID is generated when empty.
type AnalyzeRequest struct {
	Text          string   `json:"text" validate:"required"`
	SessionID     string   `json:"session_id"`
	ExplicitMode  string   `json:"explicit_mode" validate:"omitempty,oneof=document code error hipify api"`
	ParallelModes []string `json:"parallel_modes"`
	URL           string   `json:"url"`
}

func (r AnalyzeRequest) ToRouteRequest(explicitMode string) master.RouteRequest {
	return master.RouteRequest{
		Text:         r.Text,
		SessionID:    r.SessionID,
		ExplicitMode: explicitMode,
		AllowedModes: r.ParallelModes,
		URL:          r.URL,
	}
}

type BackendResponse struct {
	Mode      string         `json:"mode"`
	Result    any            `json:"result"`
	SessionID string         `json:"session_id"`
	Usage     map[string]any `json:"usage"`
}

// AnalysisCompletedMessage is published on the in-process bus after every
// successful analysis.
type AnalysisCompletedMessage struct {
	SessionID string `json:"session_id"`
	Mode      string `json:"mode"`
	Endpoint  string `json:"endpoint"`
	LatencyMs int64  `json:"latency_ms"`
}
