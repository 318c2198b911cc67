package master

import (
	"context"

	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/fetcher"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "amdlingo-be/pkg/ai/master"

// Router resolves a request to a mode and preprocesses it.
//
// Resolution order:
//  1. explicit mode, when valid and allowed
//  2. keyword rules, when the detected mode is allowed
//  3. score argmax over the allowed modes
type Router struct {
	preprocessor *Preprocessor
	logger       *zap.Logger
	tracer       trace.Tracer
}

func NewRouter(f fetcher.DocumentFetcher, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		preprocessor: NewPreprocessor(f),
		logger:       logger,
		tracer:       otel.Tracer(tracerName),
	}
}

// Resolve picks the mode for req without preprocessing it.
func (r *Router) Resolve(req RouteRequest) (mode.Mode, Source, map[mode.Mode]int) {
	allowed := mode.Normalize(req.AllowedModes)
	// Scores are always computed so resolution is total.
	scores := Score(req)

	if explicit, ok := mode.Parse(req.ExplicitMode); ok && mode.Contains(allowed, explicit) {
		return explicit, SourceExplicit, scores
	}
	if detected, ok := Detect(req); ok && mode.Contains(allowed, detected) {
		return detected, SourceRules, scores
	}
	return Best(scores, allowed), SourceScores, scores
}

func (r *Router) Route(ctx context.Context, req RouteRequest) RouteDecision {
	ctx, span := r.tracer.Start(ctx, "master.Route")
	defer span.End()

	chosen, source, scores := r.Resolve(req)
	span.SetAttributes(
		attribute.String("route.mode", chosen.String()),
		attribute.String("route.source", string(source)),
	)

	r.logger.Info("route decided",
		zap.String("session_id", req.SessionID),
		zap.String("mode", chosen.String()),
		zap.String("source", string(source)),
		zap.Any("scores", scores),
	)

	return RouteDecision{
		Mode:         chosen,
		Preprocessed: r.preprocessor.Preprocess(ctx, chosen, req),
		RawInput:     req.Text,
		SessionID:    req.SessionID,
	}
}
