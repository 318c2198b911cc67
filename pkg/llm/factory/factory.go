package factory

import (
	"fmt"
	"time"

	"amdlingo-be/pkg/llm"
	"amdlingo-be/pkg/llm/mock"
	"amdlingo-be/pkg/llm/ollama"
	"amdlingo-be/pkg/llm/openai"
)

const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Settings is the subset of configuration a provider needs.
type Settings struct {
	Provider string
	BaseURL  string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

func NewLLMProvider(s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case ProviderMock, "":
		return mock.NewProvider(), nil
	case ProviderOpenAI, "vllm":
		return openai.NewProvider(s.APIKey, s.BaseURL, s.Model, s.Timeout), nil
	case ProviderOllama:
		return ollama.NewOllamaProvider(s.BaseURL, s.Model, s.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
