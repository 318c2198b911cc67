package document

import (
	"context"
	"fmt"

	"amdlingo-be/pkg/ai/payload"
	"amdlingo-be/pkg/llm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "amdlingo-be/pkg/ai/document"

// Settings are the completion parameters used for every attempt.
type Settings struct {
	Temperature float64
	MaxTokens   int
}

func DefaultSettings() Settings {
	return Settings{Temperature: 0.2, MaxTokens: 800}
}

type Synthesizer struct {
	provider llm.LLMProvider
	settings Settings
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewSynthesizer(provider llm.LLMProvider, settings Settings, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{
		provider: provider,
		settings: settings,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// Synthesize asks the model for a summary of doc, retrying once with a
// simpler prompt, and falls back to a summary built from the page itself.
// The only error returned is a failed completion call.
func (s *Synthesizer) Synthesize(ctx context.Context, doc payload.Document, sessionID string) (DocumentResult, error) {
	ctx, span := s.tracer.Start(ctx, "document.Synthesize",
		trace.WithAttributes(attribute.String("session_id", sessionID)))
	defer span.End()

	contextText := BuildContextSnippet(doc.SectionContents, doc.RawText)

	attempts := []struct {
		name     string
		messages []llm.Message
		chain    []Strategy
	}{
		{"primary", PrimaryMessages(doc, contextText), PrimaryChain},
		{"simplified", SimplifiedMessages(doc, contextText), RetryChain},
	}

	for _, attempt := range attempts {
		content, err := s.complete(ctx, attempt.messages)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "completion failed")
			return DocumentResult{}, fmt.Errorf("%s document completion: %w", attempt.name, err)
		}

		if result, strategy, ok := Parse(content, attempt.chain); ok {
			s.logger.Info("document response parsed",
				zap.String("session_id", sessionID),
				zap.String("attempt", attempt.name),
				zap.String("strategy", strategy),
			)
			span.SetAttributes(
				attribute.String("document.attempt", attempt.name),
				attribute.String("document.strategy", strategy),
			)
			result.ContextSyncKey = sessionID
			return result.Normalize(sessionID), nil
		}

		s.logger.Warn("document response unparsable",
			zap.String("session_id", sessionID),
			zap.String("attempt", attempt.name),
			zap.Int("length", len(content)),
		)
	}

	s.logger.Warn("document response falling back to page content",
		zap.String("session_id", sessionID),
		zap.Int("sections", len(doc.SectionContents)),
	)
	span.SetAttributes(attribute.String("document.strategy", "fallback"))
	return Fallback(doc, sessionID), nil
}

func (s *Synthesizer) complete(ctx context.Context, messages []llm.Message) (string, error) {
	content, err := s.provider.Chat(ctx, messages,
		llm.WithTemperature(s.settings.Temperature),
		llm.WithMaxTokens(s.settings.MaxTokens),
	)
	if err != nil {
		return "", err
	}
	s.logger.Debug("document completion received", zap.String("content", content))
	return content, nil
}
