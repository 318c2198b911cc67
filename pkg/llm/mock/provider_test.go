package mock

import (
	"context"
	"testing"

	"amdlingo-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_ReplaysThenCans(t *testing.T) {
	p := NewProvider("first", "second")
	ctx := context.Background()

	out, err := p.Generate(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first", out)

	out, _ = p.Generate(ctx, "b")
	assert.Equal(t, "second", out)

	out, _ = p.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: "Document Title: ignored"},
		{Role: llm.RoleUser, Content: "Document Title: HIP Installation\nSource URL: N/A"},
	})
	assert.Contains(t, out, "Summary:\n- HIP Installation explains")
	assert.Contains(t, out, "Installation steps:")
	assert.Equal(t, 3, p.Calls())
}

func TestProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Generate(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
}
