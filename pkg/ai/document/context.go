package document

import (
	"strings"

	"amdlingo-be/pkg/utils"
)

// Heading variants as rendered by the ROCm docs theme, anchor suffix first.
var (
	prerequisiteHeadings = []string{"Prerequisites#", "Prerequisites #", "Prerequisites"}
	installationHeadings = []string{"Installation#", "Installation #", "Installation"}
	verifyHeadings       = []string{"Verify your installation#", "Verify your installation #", "Verify your installation"}
)

const (
	maxPrerequisiteContext = 1000
	maxInstallationContext = 1500
	maxVerifyContext       = 800
	maxSnippet             = 3500
	maxRawContext          = 3000
)

// BuildContextSnippet selects the setup-related sections of a page for the
// prompt. Pages without them contribute the head of their raw text.
func BuildContextSnippet(sections map[string]string, rawText string) string {
	blocks := make([]string, 0, 3)
	if text := pickSection(sections, prerequisiteHeadings); text != "" {
		blocks = append(blocks, "Prerequisites:\n"+utils.Truncate(text, maxPrerequisiteContext))
	}
	if text := pickSection(sections, installationHeadings); text != "" {
		blocks = append(blocks, "Installation:\n"+utils.Truncate(text, maxInstallationContext))
	}
	if text := pickSection(sections, verifyHeadings); text != "" {
		blocks = append(blocks, "Verification:\n"+utils.Truncate(text, maxVerifyContext))
	}

	if len(blocks) == 0 {
		return utils.Truncate(rawText, maxRawContext)
	}
	return utils.Truncate(strings.Join(blocks, "\n\n"), maxSnippet)
}

// pickSection returns the content of the first heading variant present
// with non-empty text.
func pickSection(sections map[string]string, headings []string) string {
	for _, heading := range headings {
		if text, ok := sections[heading]; ok && text != "" {
			return text
		}
	}
	return ""
}
