package master

import (
	"strings"

	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/utils"
)

// Features are the signals the scorer reads from a request.
type Features struct {
	HasURL        bool
	HasBraces     bool
	HasSemicolon  bool
	LineCount     int
	MentionsHIP   bool
	MentionsCUDA  bool
	MentionsError bool
	MentionsTrace bool
	TokenCount    int
	TrimmedLength int
}

func ExtractFeatures(req RouteRequest) Features {
	text := req.Text
	lowered := strings.ToLower(text)
	trimmed := strings.TrimSpace(text)

	return Features{
		HasURL:        HasDocumentReference(req),
		HasBraces:     strings.Contains(text, "{") && strings.Contains(text, "}"),
		HasSemicolon:  strings.Contains(text, ";"),
		LineCount:     len(utils.NonEmptyLines(text)),
		MentionsHIP:   strings.Contains(lowered, "hip"),
		MentionsCUDA:  strings.Contains(lowered, "cuda"),
		MentionsError: strings.Contains(lowered, "error") || strings.Contains(lowered, "illegal"),
		MentionsTrace: strings.Contains(lowered, "stack") || strings.Contains(lowered, "line"),
		TokenCount:    len(strings.Fields(text)),
		TrimmedLength: len([]rune(trimmed)),
	}
}

// Score returns one additive score per supported mode. Scores can be
// negative: a text mentioning both cuda and hip loses hipify weight.
func Score(req RouteRequest) map[mode.Mode]int {
	f := ExtractFeatures(req)
	scores := make(map[mode.Mode]int, len(mode.All()))
	for _, m := range mode.All() {
		scores[m] = 0
	}

	if f.HasURL {
		scores[mode.Document] += 20
	}
	if f.MentionsHIP {
		scores[mode.Document] += 10
	}
	if f.LineCount > 5 {
		scores[mode.Document] += 5
	}

	if f.HasBraces {
		scores[mode.Code] += 15
	}
	if f.HasSemicolon {
		scores[mode.Code] += 10
	}
	if f.LineCount > 3 {
		scores[mode.Code] += 20
	}

	if f.MentionsError {
		scores[mode.Error] += 40
	}
	if f.MentionsTrace {
		scores[mode.Error] += 10
	}

	if f.MentionsCUDA {
		scores[mode.Hipify] += 50
	}
	if f.MentionsHIP {
		scores[mode.Hipify] -= 10
	}

	if f.TokenCount == 1 && f.TrimmedLength > 0 && f.TrimmedLength <= 32 {
		scores[mode.API] += 40
	}

	return scores
}

// Best picks the highest scoring mode among allowed. Ties go to whichever
// mode appears first in allowed. allowed must be non-empty.
func Best(scores map[mode.Mode]int, allowed []mode.Mode) mode.Mode {
	best := allowed[0]
	for _, m := range allowed[1:] {
		if scores[m] > scores[best] {
			best = m
		}
	}
	return best
}
