package document

import (
	"context"
	"errors"
	"strings"
	"testing"

	"amdlingo-be/pkg/ai/payload"
	"amdlingo-be/pkg/llm"
	"amdlingo-be/pkg/llm/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var installDoc = payload.Document{
	URL:              "https://rocm.docs.amd.com/projects/HIP/en/latest/install/install.html",
	Title:            "Installing HIP — HIP documentation",
	APIList:          []string{"hipconfig", "hipGetDeviceCount"},
	SectionHeaders:   []string{"Installing HIP#", "Prerequisites#", "Installation#", "Verify your installation#"},
	RawText:          "HIP can be installed on AMD or NVIDIA platforms. Use the package manager.",
	DocumentCategory: "HIP Documentation",
	SectionContents: map[string]string{
		"Prerequisites#":            "A supported ROCm GPU",
		"Installation#":             "sudo apt install hip-runtime-amd",
		"Verify your installation#": "Run hipconfig --full",
	},
}

func TestSynthesize_PrimarySuccess(t *testing.T) {
	provider := &recordingProvider{replies: []string{"Summary:\n- HIP installs with apt.\nInstallation steps:\n- sudo apt install hip-runtime-amd\nLinks:\n- https://rocm.docs.amd.com"}}
	s := NewSynthesizer(provider, DefaultSettings(), nil)

	result, err := s.Synthesize(context.Background(), installDoc, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "HIP installs with apt.", result.Summary)
	assert.Equal(t, []string{"sudo apt install hip-runtime-amd"}, result.KeyPoints)
	assert.Equal(t, []string{"https://rocm.docs.amd.com"}, result.ConceptLinks)
	assert.Equal(t, "sess-1", result.ContextSyncKey)
	assert.Empty(t, result.Notes)
	require.Len(t, provider.requests, 1)

	messages := provider.requests[0]
	require.Len(t, messages, 3)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, ResponseInstructions, messages[1].Content)
	assert.Equal(t, llm.RoleUser, messages[2].Role)

	user := messages[2].Content
	assert.Contains(t, user, "Document Title: Installing HIP  HIP documentation\n")
	assert.Contains(t, user, "Source URL: "+installDoc.URL)
	assert.Contains(t, user, "- Verify your installation#\n")
	assert.Contains(t, user, "Mentioned APIs: hipconfig, hipGetDeviceCount\n")
	assert.Contains(t, user, "Installation:\nsudo apt install hip-runtime-amd")
}

func TestSynthesize_MessagesAreASCII(t *testing.T) {
	provider := &recordingProvider{replies: []string{"Summary:\n- ok"}}
	s := NewSynthesizer(provider, DefaultSettings(), nil)

	doc := installDoc
	doc.SectionContents = map[string]string{"Installation": "安裝 → café"}
	_, err := s.Synthesize(context.Background(), doc, "sess")
	require.NoError(t, err)

	for _, msg := range provider.requests[0] {
		for _, r := range msg.Content {
			require.Less(t, r, rune(128), "non-ascii rune in %q", msg.Content)
		}
	}
	assert.Contains(t, provider.requests[0][2].Content, "Installation:\n  cafe")
}

func TestSynthesize_RetryWithMarkdown(t *testing.T) {
	provider := &recordingProvider{replies: []string{
		unparsableProse,
		"**Overview**\nHIP installs through apt.\n### Setup\n- sudo apt install hip-runtime-amd",
	}}
	s := NewSynthesizer(provider, DefaultSettings(), nil)

	result, err := s.Synthesize(context.Background(), installDoc, "sess-2")
	require.NoError(t, err)
	require.Len(t, provider.requests, 2)

	assert.Equal(t, "HIP installs through apt.", result.Summary)
	assert.Equal(t, []string{"sudo apt install hip-runtime-amd"}, result.KeyPoints)
	assert.Equal(t, "sess-2", result.ContextSyncKey)

	retry := provider.requests[1]
	assert.Equal(t, "You summarize AMD documentation into short bullet lists.", retry[0].Content)
	assert.NotContains(t, retry[2].Content, "Mentioned APIs")
}

func TestSynthesize_FallbackAfterTwoUnparsableReplies(t *testing.T) {
	provider := mock.NewProvider(unparsableProse, unparsableProse)
	s := NewSynthesizer(provider, DefaultSettings(), nil)

	result, err := s.Synthesize(context.Background(), installDoc, "sess-3")
	require.NoError(t, err)

	assert.Equal(t, 2, provider.Calls())
	assert.Equal(t, FallbackNotes, result.Notes)
	assert.Equal(t, "sudo apt install hip-runtime-amd", result.Summary)
	assert.Equal(t, "sess-3", result.ContextSyncKey)
	assert.Len(t, result.APIExplanations, 2)
	assert.Equal(t, installDoc.SectionHeaders, result.ConceptLinks)
}

func TestSynthesize_EmptyDocumentFallback(t *testing.T) {
	s := NewSynthesizer(&recordingProvider{}, DefaultSettings(), nil)

	result, err := s.Synthesize(context.Background(), payload.Document{}, "sess-4")
	require.NoError(t, err)
	assert.Equal(t, "Unable to summarize the document.", result.Summary)
	assert.Equal(t, FallbackNotes, result.Notes)
}

func TestSynthesize_CompletionErrorPropagates(t *testing.T) {
	upstream := errors.New("connection refused")
	provider := &recordingProvider{err: upstream}
	s := NewSynthesizer(provider, DefaultSettings(), nil)

	_, err := s.Synthesize(context.Background(), installDoc, "sess-5")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.True(t, strings.HasPrefix(err.Error(), "primary document completion"))
	assert.Len(t, provider.requests, 1)
}

func TestSynthesize_MockProviderEndToEnd(t *testing.T) {
	s := NewSynthesizer(mock.NewProvider(), DefaultSettings(), nil)

	result, err := s.Synthesize(context.Background(), installDoc, "sess-6")
	require.NoError(t, err)
	assert.Contains(t, result.Summary, "Installing HIP")
	assert.Len(t, result.KeyPoints, 3)
	assert.Equal(t, []string{"N/A"}, result.ConceptLinks)
}
