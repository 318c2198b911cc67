package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"amdlingo-be/internal/pkg/logger"
	"amdlingo-be/internal/repository/memory"
	"amdlingo-be/pkg/ai/document"
	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/worker"
	"amdlingo-be/pkg/events"
	"amdlingo-be/pkg/llm"
	"amdlingo-be/pkg/llm/mock"
)

// failingProvider fails every completion call.
type failingProvider struct{}

func (failingProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return "", errors.New("connection refused")
}

func (failingProvider) Generate(context.Context, string, ...llm.Option) (string, error) {
	return "", errors.New("connection refused")
}

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return p.err
}

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *recordingForwarder) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *recordingForwarder) received() []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]events.Event(nil), f.events...)
}

type fixture struct {
	synthesizer *document.Synthesizer
	dispatcher  *worker.Dispatcher
	router      *master.Router
	sessions    *memory.SessionHistoryRepository
	publisher   *recordingPublisher
}

func newFixture(provider llm.LLMProvider) fixture {
	if provider == nil {
		provider = mock.NewProvider()
	}
	synthesizer := document.NewSynthesizer(provider, document.DefaultSettings(), nil)
	return fixture{
		synthesizer: synthesizer,
		dispatcher:  worker.NewDispatcher(synthesizer, nil),
		router:      master.NewRouter(nil, nil),
		sessions:    memory.NewSessionHistoryRepository(time.Minute),
		publisher:   &recordingPublisher{},
	}
}

func (f fixture) analysis() IAnalysisService {
	return NewAnalysisService(f.router, f.dispatcher, f.sessions, f.publisher, logger.NewNop())
}
