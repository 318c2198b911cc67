package document

import (
	"fmt"
	"strings"

	"amdlingo-be/pkg/ai/payload"
	"amdlingo-be/pkg/utils"
)

const (
	FallbackNotes       = "Fallback response without LLM."
	unableToSummarize   = "Unable to summarize the document."
	officialDocsPointer = "Refer to official ROCm docs for details."
	seeDocumentation    = "See documentation"

	maxFallbackSummary   = 600
	maxFallbackSentences = 3
	maxFallbackKeyPoints = 5
	maxFallbackLinks     = 5
	maxFallbackAPIs      = 3
)

// keyPointHeadings is walked in order when collecting fallback key points.
var keyPointHeadings = concat(prerequisiteHeadings, installationHeadings, verifyHeadings)

// Fallback builds a result from the fetched page without any model output.
func Fallback(doc payload.Document, sessionID string) DocumentResult {
	summary := fallbackSummary(doc.RawText, doc.SectionContents)
	if summary == "" {
		summary = unableToSummarize
	}

	apis := head(doc.APIList, maxFallbackAPIs)
	explanations := make([]APIExplanation, 0, len(apis))
	for _, api := range apis {
		explanations = append(explanations, APIExplanation{
			Name:           api,
			Description:    officialDocsPointer,
			Parameters:     seeDocumentation,
			CommonPitfalls: []string{},
		})
	}

	return DocumentResult{
		Summary:         summary,
		APIExplanations: explanations,
		KeyPoints:       fallbackKeyPoints(doc.SectionContents),
		ConceptLinks:    head(doc.SectionHeaders, maxFallbackLinks),
		Notes:           FallbackNotes,
		ContextSyncKey:  sessionID,
	}.Normalize(sessionID)
}

func fallbackSummary(rawText string, sections map[string]string) string {
	if install := pickSection(sections, installationHeadings); install != "" {
		return utils.Truncate(install, maxFallbackSummary)
	}
	if rawText == "" {
		return ""
	}
	sentences := utils.SplitSentences(rawText)
	return utils.Truncate(strings.Join(head(sentences, maxFallbackSentences), " "), maxFallbackSummary)
}

func fallbackKeyPoints(sections map[string]string) []string {
	points := make([]string, 0, maxFallbackKeyPoints)
	for _, heading := range keyPointHeadings {
		content := sections[heading]
		if content == "" {
			continue
		}
		label := strings.TrimRight(heading, "# ")
		for _, line := range utils.NonEmptyLines(content) {
			points = append(points, fmt.Sprintf("%s: %s", label, line))
			if len(points) >= maxFallbackKeyPoints {
				return points
			}
		}
	}
	return points
}

func concat(groups ...[]string) []string {
	var out []string
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
