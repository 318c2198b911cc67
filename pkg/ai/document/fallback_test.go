package document

import (
	"encoding/json"
	"strings"
	"testing"

	"amdlingo-be/pkg/ai/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resultKeys = []string{
	"summary", "api_explanations", "key_points", "pitfalls",
	"concept_links", "example_code", "notes", "context_sync_key",
}

func TestFallback_EmptyPayload(t *testing.T) {
	result := Fallback(payload.Document{}, "sess-1")

	assert.Equal(t, "Unable to summarize the document.", result.Summary)
	assert.Equal(t, FallbackNotes, result.Notes)
	assert.Equal(t, "sess-1", result.ContextSyncKey)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range resultKeys {
		require.Contains(t, decoded, key)
	}
	for _, key := range []string{"api_explanations", "key_points", "pitfalls", "concept_links"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
}

func TestFallback_FromSections(t *testing.T) {
	doc := payload.Document{
		RawText:        "Ignored because an installation section exists.",
		SectionHeaders: []string{"Installation#", "Prerequisites#", "Verify", "Uninstall", "FAQ", "Support"},
		APIList:        []string{"hipMalloc", "hipMemcpy", "hipFree", "hipDeviceSynchronize"},
		SectionContents: map[string]string{
			"Prerequisites#": "Supported GPU\n\nLinux kernel 5.15",
			"Installation":   "apt install rocm\nreboot\nadd user to render group\nlog in again",
		},
	}

	result := Fallback(doc, "sess-2")

	assert.Equal(t, "apt install rocm\nreboot\nadd user to render group\nlog in again", result.Summary)
	assert.Equal(t, []string{
		"Prerequisites: Supported GPU",
		"Prerequisites: Linux kernel 5.15",
		"Installation: apt install rocm",
		"Installation: reboot",
		"Installation: add user to render group",
	}, result.KeyPoints)
	assert.Equal(t, []string{"Installation#", "Prerequisites#", "Verify", "Uninstall", "FAQ"}, result.ConceptLinks)

	require.Len(t, result.APIExplanations, 3)
	assert.Equal(t, APIExplanation{
		Name:           "hipMalloc",
		Description:    "Refer to official ROCm docs for details.",
		Parameters:     "See documentation",
		CommonPitfalls: []string{},
	}, result.APIExplanations[0])
	assert.Equal(t, "hipFree", result.APIExplanations[2].Name)
}

func TestFallback_SummaryFromSentences(t *testing.T) {
	doc := payload.Document{RawText: "HIP is a runtime. It is portable! Does it need ROCm? Yes. Extra."}
	assert.Equal(t, "HIP is a runtime. It is portable! Does it need ROCm?", Fallback(doc, "").Summary)

	doc = payload.Document{RawText: "先安裝。 再驗證！ 完成。 多餘"}
	assert.Equal(t, "先安裝。 再驗證！ 完成。", Fallback(doc, "").Summary)

	doc = payload.Document{RawText: strings.Repeat("a", 1000)}
	assert.Len(t, Fallback(doc, "").Summary, 600)
}

func TestNormalize(t *testing.T) {
	result := DocumentResult{
		Summary:         "s",
		APIExplanations: []APIExplanation{{Name: "hipMalloc"}},
	}.Normalize("sess")

	assert.Equal(t, "sess", result.ContextSyncKey)
	assert.NotNil(t, result.KeyPoints)
	assert.NotNil(t, result.Pitfalls)
	assert.NotNil(t, result.ConceptLinks)
	assert.NotNil(t, result.APIExplanations[0].CommonPitfalls)

	kept := DocumentResult{ContextSyncKey: "existing"}.Normalize("sess")
	assert.Equal(t, "existing", kept.ContextSyncKey)
}
