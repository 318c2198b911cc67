package document

import (
	"fmt"
	"strings"

	"amdlingo-be/pkg/ai/payload"
	"amdlingo-be/pkg/llm"
	"amdlingo-be/pkg/utils"
)

const (
	primarySystemPrompt = "You are AMDlingo's Document Worker Agent. " +
		"Summarize AMD/ROCm technical docs into very short bullets."
	simplifiedSystemPrompt = "You summarize AMD documentation into short bullet lists."

	maxPrimaryHeaders    = 10
	maxPrimaryAPIs       = 10
	maxSimplifiedHeaders = 5
	maxSimplifiedContext = 4000
)

// ResponseInstructions fixes the answer layout the labeled parser expects.
const ResponseInstructions = `Write a concise response using EXACTLY these section headers and bullet markers:
Summary:
- sentence 1 (at most 20 words)
- sentence 2 (optional, at most 20 words)

Installation steps:
- step 1 (at most 20 words)
- step 2 (optional)
- step 3 (optional)

Links:
- link description 1 (include URL if known)
- link description 2 (optional)

Rules:
- Do not add other sections, code fences, or formatting.
- Each bullet must begin with "-".`

// PrimaryMessages builds the first attempt: full header and API lists plus
// the context snippet.
func PrimaryMessages(doc payload.Document, contextText string) []llm.Message {
	var b strings.Builder
	writeDocumentHeader(&b, doc, maxPrimaryHeaders)
	fmt.Fprintf(&b, "Mentioned APIs: %s\n", apiLine(doc.APIList))
	b.WriteString("Document content:\n")
	b.WriteString(contextText)
	b.WriteString("\nProduce the summary now. Limit summary to 3 sentences and include at most " +
		"4 entries for installation_steps, prerequisites, verification, and links.")

	return sanitizeMessages([]llm.Message{
		{Role: llm.RoleSystem, Content: primarySystemPrompt},
		{Role: llm.RoleSystem, Content: ResponseInstructions},
		{Role: llm.RoleUser, Content: b.String()},
	})
}

// SimplifiedMessages builds the retry: fewer headers, no API list, and a
// shorter context.
func SimplifiedMessages(doc payload.Document, contextText string) []llm.Message {
	var b strings.Builder
	writeDocumentHeader(&b, doc, maxSimplifiedHeaders)
	b.WriteString("Document content:\n")
	b.WriteString(utils.Truncate(contextText, maxSimplifiedContext))
	b.WriteString("\nProduce the bullet-format summary exactly as instructed using the exact headers.")

	return sanitizeMessages([]llm.Message{
		{Role: llm.RoleSystem, Content: simplifiedSystemPrompt},
		{Role: llm.RoleSystem, Content: ResponseInstructions},
		{Role: llm.RoleUser, Content: b.String()},
	})
}

func writeDocumentHeader(b *strings.Builder, doc payload.Document, maxHeaders int) {
	title := doc.Title
	if title == "" {
		title = "Untitled Document"
	}
	url := doc.URL
	if url == "" {
		url = "N/A"
	}

	fmt.Fprintf(b, "Document Title: %s\n", title)
	fmt.Fprintf(b, "Source URL: %s\n", url)
	b.WriteString("Section headers:\n")

	headers := head(doc.SectionHeaders, maxHeaders)
	if len(headers) == 0 {
		b.WriteString("- (not provided)\n")
		return
	}
	for _, header := range headers {
		fmt.Fprintf(b, "- %s\n", header)
	}
}

func apiLine(apis []string) string {
	if len(apis) == 0 {
		return "(none)"
	}
	return strings.Join(head(apis, maxPrimaryAPIs), ", ")
}

func sanitizeMessages(messages []llm.Message) []llm.Message {
	for i := range messages {
		messages[i].Content = Sanitize(messages[i].Content)
	}
	return messages
}
