package utils

import (
	"strings"
	"unicode"
)

// Truncate cuts text to at most maxRunes characters. Slicing works on runes
// so multi-byte text is never split mid character.
func Truncate(text string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if len(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes])
}

// sentenceEnders covers ASCII and full-width CJK terminal punctuation.
const sentenceEnders = ".!?。！？"

// SplitSentences splits text after terminal punctuation that is followed by
// whitespace. The whitespace run is consumed; punctuation stays with its
// sentence.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(sentenceEnders, runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 {
			continue
		}
		sentences = append(sentences, string(runes[start:i+1]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

// NonEmptyLines returns the trimmed lines of text, skipping blank ones.
func NonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// CollapseSpace trims text and folds every whitespace run into one space.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
