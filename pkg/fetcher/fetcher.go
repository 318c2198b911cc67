package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"amdlingo-be/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 5 * time.Second

	maxTitleLength   = 200
	maxHeaderLength  = 200
	maxSectionCount  = 20
	maxTextLength    = 12000
	maxAPINames      = 20
	rootSectionLabel = "Document"
)

var apiPattern = regexp.MustCompile(`\b(?:hip|cuda)[A-Za-z0-9_]+\b`)

// Document is the structured view of a fetched documentation page.
// The zero value is what callers get when a fetch fails.
type Document struct {
	Title            string            `json:"title"`
	SectionHeaders   []string          `json:"section_headers"`
	RawText          string            `json:"raw_text"`
	DocumentCategory string            `json:"document_category"`
	APIList          []string          `json:"api_list"`
	SectionContents  map[string]string `json:"section_contents"`
}

// IsEmpty reports whether nothing was extracted.
func (d Document) IsEmpty() bool {
	return d.Title == "" && len(d.SectionHeaders) == 0 && d.RawText == "" &&
		len(d.APIList) == 0 && len(d.SectionContents) == 0
}

// DocumentFetcher is the capability the document preprocessor depends on.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) Document
}

type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// Ensure Fetcher implements DocumentFetcher
var _ DocumentFetcher = &Fetcher{}

func NewFetcher(timeout time.Duration, logger *zap.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch downloads url and extracts its structure. Transport errors, non-2xx
// statuses, timeouts and unparsable bodies all produce an empty Document.
func (f *Fetcher) Fetch(ctx context.Context, url string) Document {
	doc, err := f.getHTML(ctx, url)
	if err != nil {
		f.logger.Warn("document fetch failed", zap.String("url", url), zap.Error(err))
		return Document{}
	}

	result := Extract(url, doc)
	f.logger.Debug("document fetched",
		zap.String("url", url),
		zap.Int("sections", len(result.SectionHeaders)),
		zap.Int("apis", len(result.APIList)),
	)
	return result
}

func (f *Fetcher) getHTML(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// Extract builds a Document from an already parsed page.
func Extract(url string, doc *goquery.Document) Document {
	headers := extractSections(doc)
	rawText := extractText(doc)

	return Document{
		Title:            extractTitle(doc),
		SectionHeaders:   headers,
		RawText:          rawText,
		DocumentCategory: GuessCategory(url, headers),
		APIList:          ExtractAPINames(rawText),
		SectionContents:  extractSectionContents(doc),
	}
}

func extractTitle(doc *goquery.Document) string {
	if title := utils.CollapseSpace(doc.Find("title").First().Text()); title != "" {
		return utils.Truncate(title, maxTitleLength)
	}
	if h1 := utils.CollapseSpace(doc.Find("h1").First().Text()); h1 != "" {
		return utils.Truncate(h1, maxTitleLength)
	}
	return ""
}

func extractSections(doc *goquery.Document) []string {
	sections := make([]string, 0)
	doc.Find("h1,h2,h3").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if text := utils.CollapseSpace(s.Text()); text != "" {
			sections = append(sections, utils.Truncate(text, maxHeaderLength))
		}
		return len(sections) < maxSectionCount
	})
	return sections
}

func extractText(doc *goquery.Document) string {
	var parts []string
	total := 0
	doc.Find("p,li,code,pre").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := utils.CollapseSpace(s.Text())
		if text != "" {
			parts = append(parts, text)
			total += len([]rune(text))
		}
		return total < maxTextLength
	})
	return utils.Truncate(strings.Join(parts, "\n"), maxTextLength)
}

// ExtractAPINames returns hip*/cuda* identifiers in first-seen order,
// de-duplicated and capped.
func ExtractAPINames(text string) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, match := range apiPattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true
		names = append(names, match)
		if len(names) >= maxAPINames {
			break
		}
	}
	return names
}

func extractSectionContents(doc *goquery.Document) map[string]string {
	sections := make(map[string][]string)
	current := rootSectionLabel

	doc.Find("h1,h2,h3,p,li").Each(func(i int, s *goquery.Selection) {
		text := utils.CollapseSpace(s.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3":
			current = text
			if _, ok := sections[current]; !ok {
				sections[current] = []string{}
			}
		default:
			sections[current] = append(sections[current], text)
		}
	})

	contents := make(map[string]string, len(sections))
	for heading, lines := range sections {
		contents[heading] = strings.Join(lines, "\n")
	}
	return contents
}

// GuessCategory labels a document from its URL and headings.
func GuessCategory(url string, sections []string) string {
	lowered := strings.ToLower(url)
	if strings.Contains(lowered, "hip") {
		return "HIP Documentation"
	}
	if strings.Contains(lowered, "rocm") {
		return "ROCm Documentation"
	}
	for _, section := range sections {
		if strings.Contains(strings.ToLower(section), "api") {
			return "API Reference"
		}
	}
	return "Technical Document"
}
