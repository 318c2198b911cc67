package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"amdlingo-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaProvider_Chat(t *testing.T) {
	var got ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"model":"llama3","message":{"role":"assistant","content":"Links:\n- N/A"},"done":true}`)
	}))
	defer server.Close()

	p := NewOllamaProvider(server.URL, "llama3", 0)
	out, err := p.Generate(context.Background(), "hi", llm.WithMaxTokens(64))

	require.NoError(t, err)
	assert.Equal(t, "Links:\n- N/A", out)
	assert.False(t, got.Stream)
	assert.Equal(t, 64, got.Options.NumPredict)
	assert.Equal(t, []llm.Message{{Role: "user", Content: "hi"}}, got.Messages)
}

func TestOllamaProvider_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model missing", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewOllamaProvider(server.URL, "llama3", 0).Generate(context.Background(), "hi")
	assert.ErrorContains(t, err, "status 404")
}

func TestOllamaProvider_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"model":"llama3","message":{"role":"assistant","content":""},"done":false}`)
	}))
	defer server.Close()

	_, err := NewOllamaProvider(server.URL, "llama3", 0).Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}
