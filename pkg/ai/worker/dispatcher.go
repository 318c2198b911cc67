// Package worker turns a routing decision into the final structured answer.
// Document requests go through the document synthesizer; the other modes
// are answered offline from their preprocessed payloads.
package worker

import (
	"context"
	"fmt"

	"amdlingo-be/pkg/ai/document"
	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/ai/payload"

	"go.uber.org/zap"
)

type WorkerResponse struct {
	Mode      mode.Mode      `json:"mode"`
	Result    any            `json:"result"`
	SessionID string         `json:"session_id"`
	Usage     map[string]any `json:"usage"`
}

// DocumentSynthesizer is the part of document.Synthesizer the dispatcher uses.
type DocumentSynthesizer interface {
	Synthesize(ctx context.Context, doc payload.Document, sessionID string) (document.DocumentResult, error)
}

type Dispatcher struct {
	documents DocumentSynthesizer
	logger    *zap.Logger
}

func NewDispatcher(documents DocumentSynthesizer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{documents: documents, logger: logger}
}

// Generate answers decision. Only the document synthesizer can fail, and
// only when its completion backend does.
func (d *Dispatcher) Generate(ctx context.Context, decision master.RouteDecision) (WorkerResponse, error) {
	response := WorkerResponse{Mode: decision.Mode, SessionID: decision.SessionID}

	switch p := decision.Preprocessed.(type) {
	case payload.Document:
		result, err := d.documents.Synthesize(ctx, p, decision.SessionID)
		if err != nil {
			return WorkerResponse{}, fmt.Errorf("document worker: %w", err)
		}
		response.Result = result
	case payload.Code:
		response.Result = codeResult(p, decision.SessionID)
	case payload.Error:
		response.Result = errorResult(p, decision.SessionID)
	case payload.Hipify:
		response.Result = hipifyResult(p, decision.SessionID)
	case payload.API:
		response.Result = apiResult(p, decision.SessionID)
	default:
		return WorkerResponse{}, fmt.Errorf("no worker for payload %T", decision.Preprocessed)
	}

	if response.Mode == "" {
		response.Mode = decision.Preprocessed.Mode()
	}

	d.logger.Info("worker finished",
		zap.String("session_id", decision.SessionID),
		zap.String("mode", response.Mode.String()),
	)
	return response, nil
}
