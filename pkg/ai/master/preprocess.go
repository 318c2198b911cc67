package master

import (
	"context"
	"strings"

	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/ai/payload"
	"amdlingo-be/pkg/fetcher"
)

const (
	defaultTitle     = "Untitled Document"
	defaultCategory  = "HIP Runtime API"
	defaultLikelyAPI = "hipMemcpy"
	unknownErrorType = "unknown"
	illegalErrorType = "hipErrorIllegalAddress"
	launchSegment    = "<<<grid, block>>>"
	maxStackLines    = 5
)

var defaultSectionHeaders = []string{"Description", "Usage"}

// knownMappings are the CUDA calls the static translation reports on.
var knownMappings = []payload.Mapping{
	{From: "cudaMalloc", To: "hipMalloc"},
	{From: "cudaMemcpy", To: "hipMemcpy"},
}

// Preprocessor builds the payload for one mode. Preprocessors never fail;
// missing data falls back to defaults.
type Preprocessor struct {
	fetcher fetcher.DocumentFetcher
}

func NewPreprocessor(f fetcher.DocumentFetcher) *Preprocessor {
	return &Preprocessor{fetcher: f}
}

func (p *Preprocessor) Preprocess(ctx context.Context, m mode.Mode, req RouteRequest) payload.Payload {
	switch m {
	case mode.Document:
		return p.Document(ctx, req)
	case mode.Code:
		return PreprocessCode(req.Text)
	case mode.Error:
		return PreprocessError(req.Text)
	case mode.Hipify:
		return PreprocessHipify(req.Text)
	default:
		return PreprocessAPI(req.Text)
	}
}

// Document resolves the target URL, fetches it when possible and merges the
// result with fallbacks taken from the request text.
func (p *Preprocessor) Document(ctx context.Context, req RouteRequest) payload.Document {
	url := req.URL
	if url == "" {
		url = firstURLToken(req.Text)
	}

	var doc fetcher.Document
	if url != "" && p.fetcher != nil {
		doc = p.fetcher.Fetch(ctx, url)
	}

	result := payload.Document{
		URL:              url,
		Title:            orDefault(doc.Title, defaultTitle),
		APIList:          doc.APIList,
		SectionHeaders:   doc.SectionHeaders,
		RawText:          orDefault(doc.RawText, req.Text),
		DocumentCategory: orDefault(doc.DocumentCategory, defaultCategory),
		SectionContents:  doc.SectionContents,
	}
	if len(result.APIList) == 0 {
		result.APIList = apiCandidates(req.Text)
	}
	if len(result.SectionHeaders) == 0 {
		result.SectionHeaders = append([]string(nil), defaultSectionHeaders...)
	}
	if result.SectionContents == nil {
		result.SectionContents = map[string]string{}
	}
	return result
}

func PreprocessCode(text string) payload.Code {
	return payload.Code{
		Language:        guessLanguage(text),
		APIList:         apiCandidates(text),
		NormalizedCode:  strings.TrimSpace(text),
		IssuesFound:     []string{},
		KernelBlocks:    kernelNames(text),
		PointerMetadata: map[string]string{},
	}
}

func PreprocessError(text string) payload.Error {
	return payload.Error{
		ErrorType:       errorType(text),
		ErrorMessage:    text,
		LikelyAPI:       likelyAPI(text),
		StackTrace:      stackTrace(text),
		CodeContext:     "",
		PointerMetadata: map[string]string{},
	}
}

func PreprocessHipify(text string) payload.Hipify {
	report := make([]payload.Mapping, 0, len(knownMappings))
	for _, mapping := range knownMappings {
		if strings.Contains(text, mapping.From) {
			report = append(report, mapping)
		}
	}

	unconverted := []string{}
	if strings.Contains(text, "<<<") && strings.Contains(text, ">>>") {
		unconverted = append(unconverted, launchSegment)
	}

	return payload.Hipify{
		OriginalCode:        text,
		HipifiedCodeStatic:  strings.ReplaceAll(text, "cuda", "hip"),
		MappingReport:       report,
		UnconvertedSegments: unconverted,
	}
}

func PreprocessAPI(text string) payload.API {
	return payload.API{
		APIName:  strings.TrimSpace(text),
		Metadata: payload.APIMetadata{Parameters: []string{}},
	}
}

func firstURLToken(text string) string {
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://") {
			return token
		}
	}
	return ""
}

func apiCandidates(text string) []string {
	out := []string{}
	for _, token := range strings.Fields(text) {
		token = strings.Trim(token, ";(),")
		if strings.HasPrefix(token, "hip") || strings.HasPrefix(token, "cuda") {
			out = append(out, token)
		}
	}
	return out
}

func guessLanguage(text string) string {
	switch {
	case strings.Contains(text, "__global__"), strings.Contains(text, "hipLaunchKernelGGL"):
		return "hip"
	case strings.Contains(text, "__device__"):
		return "cuda"
	default:
		return "c++"
	}
}

func kernelNames(text string) []string {
	names := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "__global__") {
			continue
		}
		if parts := strings.Fields(line); len(parts) >= 3 {
			name, _, _ := strings.Cut(parts[2], "(")
			names = append(names, name)
		}
	}
	return names
}

func errorType(text string) string {
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, "hipError") {
			return word
		}
	}
	if strings.Contains(strings.ToLower(text), "illegal") {
		return illegalErrorType
	}
	return unknownErrorType
}

func likelyAPI(text string) string {
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "hip") {
			return token
		}
	}
	return defaultLikelyAPI
}

func stackTrace(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(line, ":") && strings.HasPrefix(trimmed, "at") {
			lines = append(lines, trimmed)
			if len(lines) == maxStackLines {
				break
			}
		}
	}
	return lines
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
