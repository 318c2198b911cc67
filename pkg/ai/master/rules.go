package master

import (
	"regexp"
	"strings"

	"amdlingo-be/pkg/ai/mode"
)

var (
	urlPattern = regexp.MustCompile(`(?i)https?://[\w./-]+`)
	apiToken   = regexp.MustCompile(`^[A-Za-z0-9_]{2,32}$`)
)

// Code keywords match case-sensitively, the rest against lowercased text.
var (
	codeKeywords   = []string{"__global__", "hipLaunchKernelGGL", "__device__", "threadIdx"}
	errorKeywords  = []string{"hiperror", "illegal", "stack trace", "segmentation"}
	hipifyKeywords = []string{"cudamalloc", "cudamemcpy", "<<<", "cudaerror"}
)

// HasDocumentReference reports whether the request points at a document,
// either through the url field or an http(s) link inside the text.
func HasDocumentReference(req RouteRequest) bool {
	if req.URL != "" {
		return true
	}
	return urlPattern.MatchString(req.Text)
}

// Detect runs the keyword rules in priority order and returns the first
// mode that matches. The second result is false when no rule fires.
func Detect(req RouteRequest) (mode.Mode, bool) {
	text := req.Text

	if HasDocumentReference(req) {
		return mode.Document, true
	}
	if containsAny(text, codeKeywords) {
		return mode.Code, true
	}

	lowered := strings.ToLower(text)
	if containsAny(lowered, errorKeywords) {
		return mode.Error, true
	}
	if containsAny(lowered, hipifyKeywords) {
		return mode.Hipify, true
	}

	if tokens := strings.Fields(text); len(tokens) == 1 && apiToken.MatchString(tokens[0]) {
		return mode.API, true
	}
	return "", false
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
