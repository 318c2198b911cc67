package dto

import (
	"encoding/json"

	"amdlingo-be/pkg/ai/master"
)

type RouteRequest struct {
	Text          string   `json:"text" validate:"required"`
	SessionID     string   `json:"session_id" validate:"required"`
	ExplicitMode  string   `json:"explicit_mode"`
	ParallelModes []string `json:"parallel_modes"`
	URL           string   `json:"url"`
}

func (r RouteRequest) ToRouteRequest() master.RouteRequest {
	return master.RouteRequest{
		Text:         r.Text,
		SessionID:    r.SessionID,
		ExplicitMode: r.ExplicitMode,
		AllowedModes: r.ParallelModes,
		URL:          r.URL,
	}
}

// WorkerRequest carries an already routed decision. Preprocessed is decoded
// by the mode named in the path.
type WorkerRequest struct {
	Mode         string          `json:"mode"`
	Preprocessed json.RawMessage `json:"preprocessed"`
	RawInput     string          `json:"raw_input"`
	SessionID    string          `json:"session_id" validate:"required"`
}

type DocumentLLMRequest struct {
	SessionID    string          `json:"session_id" validate:"required"`
	Preprocessed json.RawMessage `json:"preprocessed"`
	RawInput     string          `json:"raw_input"`
}
