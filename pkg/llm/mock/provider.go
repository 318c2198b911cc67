// Package mock is an offline completion backend. It answers every chat in
// the labeled bullet layout the document synthesizer asks for, so the whole
// parse pipeline runs without a model server.
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"amdlingo-be/pkg/llm"
)

const titlePrefix = "Document Title:"

type Provider struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

// Ensure Provider implements LLMProvider
var _ llm.LLMProvider = &Provider{}

// NewProvider returns a provider that replays responses in order, one per
// call. Once they run out, or when none are given, it answers with a canned
// summary of the prompt's document title.
func NewProvider(responses ...string) *Provider {
	return &Provider{responses: responses}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	call := p.calls
	p.calls++
	if call < len(p.responses) {
		return p.responses[call], nil
	}
	return canned(history), nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}

// Calls reports how many completions were requested.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func canned(history []llm.Message) string {
	title := "the document"
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != llm.RoleUser {
			continue
		}
		for _, line := range strings.Split(history[i].Content, "\n") {
			if rest, ok := strings.CutPrefix(strings.TrimSpace(line), titlePrefix); ok && strings.TrimSpace(rest) != "" {
				title = strings.TrimSpace(rest)
			}
		}
		break
	}

	return fmt.Sprintf(`Summary:
- %s explains how to set up and verify the ROCm HIP toolchain.
- Generated offline by the mock completion backend.
Installation steps:
- Check the prerequisites listed in the document.
- Install the packages named in the installation section.
- Run the verification commands.
Links:
- N/A`, title)
}
