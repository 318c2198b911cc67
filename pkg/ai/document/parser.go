package document

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Strategy is one way of reading model output. ok is false when the output
// does not look like the format the strategy understands.
type Strategy struct {
	Name  string
	Parse func(content string) (result DocumentResult, ok bool)
}

var (
	JSONStrategy     = Strategy{Name: "json", Parse: parseJSON}
	LabeledStrategy  = Strategy{Name: "labeled", Parse: parseLabeled}
	MarkdownStrategy = Strategy{Name: "markdown", Parse: parseMarkdown}
)

// PrimaryChain is tried on the first completion, RetryChain on the
// simplified retry.
var (
	PrimaryChain = []Strategy{JSONStrategy, LabeledStrategy}
	RetryChain   = []Strategy{JSONStrategy, LabeledStrategy, MarkdownStrategy}
)

// Parse runs content through chain and returns the first success along with
// the name of the strategy that produced it.
func Parse(content string, chain []Strategy) (DocumentResult, string, bool) {
	for _, strategy := range chain {
		if result, ok := strategy.Parse(content); ok {
			return result, strategy.Name, true
		}
	}
	return DocumentResult{}, "", false
}

// parseJSON reads the outermost {...} span. Any JSON object is accepted;
// installation_steps and links are preferred, key_points and concept_links
// are read when a model echoes the result schema instead.
func parseJSON(content string) (DocumentResult, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return DocumentResult{}, false
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content[start:end+1]), &data); err != nil {
		return DocumentResult{}, false
	}

	installation, ok := stringList(data["installation_steps"])
	if !ok {
		installation, _ = stringList(data["key_points"])
	}
	links, ok := stringList(data["links"])
	if !ok {
		links, _ = stringList(data["concept_links"])
	}

	return newResult(stringValue(data["summary"]), installation, links), true
}

type bucket int

const (
	bucketNone bucket = iota
	bucketSummary
	bucketInstallation
	bucketLinks
	bucketOther
)

const bulletCutset = "-*•0123456789. "

// parseLabeled reads the Summary / Installation steps / Links layout the
// prompt asks for.
func parseLabeled(content string) (DocumentResult, bool) {
	sections := map[bucket][]string{}
	current := bucketNone

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lowered := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lowered, "summary"):
			current = bucketSummary
			continue
		case strings.HasPrefix(lowered, "installation"):
			current = bucketInstallation
			continue
		case strings.HasPrefix(lowered, "links"):
			current = bucketLinks
			continue
		}
		if current == bucketNone {
			continue
		}
		if cleaned := strings.TrimSpace(strings.TrimLeft(line, bulletCutset)); cleaned != "" {
			sections[current] = append(sections[current], cleaned)
		}
	}

	if len(sections[bucketSummary]) == 0 && len(sections[bucketInstallation]) == 0 {
		return DocumentResult{}, false
	}
	summary := strings.Join(head(sections[bucketSummary], 2), " ")
	return newResult(summary, sections[bucketInstallation], sections[bucketLinks]), true
}

const maxHeadingLength = 60

// parseMarkdown handles free-form markdown: **bold** or # headings, short
// lines ending in a colon, and -/* bullets. It needs at least one heading.
func parseMarkdown(content string) (DocumentResult, bool) {
	buckets := map[bucket][]string{}
	current := bucketNone
	sawHeading := false

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if heading, ok := markdownHeading(line); ok {
			sawHeading = true
			current = classifyHeading(heading)
			continue
		}

		target := current
		if target == bucketNone {
			target = bucketSummary
		}
		if isBullet(line) {
			line = strings.TrimSpace(strings.TrimLeft(line, "-* "))
			if strings.Contains(line, "http://") || strings.Contains(line, "https://") {
				target = bucketLinks
			}
		}
		if line != "" {
			buckets[target] = append(buckets[target], line)
		}
	}

	if !sawHeading {
		return DocumentResult{}, false
	}

	summaryLines := buckets[bucketSummary]
	other := buckets[bucketOther]
	if len(summaryLines) == 0 {
		summaryLines, other = other, nil
	}

	installation := buckets[bucketInstallation]
	if len(installation) == 0 {
		if len(summaryLines) > 2 {
			installation = append(installation, summaryLines[2:]...)
		}
		installation = append(installation, other...)
	}

	summary := strings.Join(head(summaryLines, 2), " ")
	if summary == "" && len(installation) == 0 {
		return DocumentResult{}, false
	}
	return newResult(summary, installation, buckets[bucketLinks]), true
}

func markdownHeading(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "**") && strings.HasSuffix(strings.TrimSuffix(line, ":"), "**") && len(line) > 4:
		text := strings.Trim(strings.TrimSuffix(line, ":"), "*")
		return strings.TrimSpace(strings.TrimSuffix(text, ":")), true
	case strings.HasPrefix(line, "#"):
		return strings.TrimSpace(strings.TrimLeft(line, "#")), true
	case strings.HasSuffix(line, ":") && len(line) <= maxHeadingLength && !isBullet(line):
		return strings.TrimSpace(strings.TrimSuffix(line, ":")), true
	}
	return "", false
}

func isBullet(line string) bool {
	return (strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")) && !strings.HasPrefix(line, "**")
}

func classifyHeading(heading string) bucket {
	lowered := strings.ToLower(heading)
	switch {
	case containsAny(lowered, "summary", "overview", "description", "tl;dr"):
		return bucketSummary
	case containsAny(lowered, "install", "step", "setup", "prerequisite", "verif"):
		return bucketInstallation
	case containsAny(lowered, "link", "reference", "resource", "see also"):
		return bucketLinks
	default:
		return bucketOther
	}
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []any:
		parts, _ := stringList(value)
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(value)
	}
}

// stringList coerces a decoded JSON value into strings. ok is false when
// the key was absent.
func stringList(v any) ([]string, bool) {
	switch value := v.(type) {
	case nil:
		return nil, false
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s := strings.TrimSpace(stringValue(item)); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		if strings.TrimSpace(value) == "" {
			return []string{}, true
		}
		return []string{value}, true
	default:
		return []string{fmt.Sprint(value)}, true
	}
}
