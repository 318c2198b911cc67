// Package document turns a preprocessed documentation page into a short
// structured answer. Model output is parsed through an ordered chain of
// strategies; when every strategy fails the answer is synthesized from the
// fetched page alone.
package document

// APIExplanation describes one API mentioned by the document.
type APIExplanation struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Parameters     string   `json:"parameters"`
	Return         string   `json:"return"`
	CommonPitfalls []string `json:"common_pitfalls"`
	ExampleCode    string   `json:"example_code"`
}

// DocumentResult is the wire contract of the document worker. Every field
// is always present; sequences are never null.
type DocumentResult struct {
	Summary         string           `json:"summary"`
	APIExplanations []APIExplanation `json:"api_explanations"`
	KeyPoints       []string         `json:"key_points"`
	Pitfalls        []string         `json:"pitfalls"`
	ConceptLinks    []string         `json:"concept_links"`
	ExampleCode     string           `json:"example_code"`
	Notes           string           `json:"notes"`
	ContextSyncKey  string           `json:"context_sync_key"`
}

const (
	maxKeyPoints    = 3
	maxConceptLinks = 2
)

// newResult shapes parsed model output, capping installation steps and links.
func newResult(summary string, installation, links []string) DocumentResult {
	return DocumentResult{
		Summary:      summary,
		KeyPoints:    head(installation, maxKeyPoints),
		ConceptLinks: head(links, maxConceptLinks),
	}.Normalize("")
}

// Normalize replaces nil sequences with empty ones and fills the context
// sync key with sessionID when it is unset.
func (r DocumentResult) Normalize(sessionID string) DocumentResult {
	if r.APIExplanations == nil {
		r.APIExplanations = []APIExplanation{}
	}
	for i := range r.APIExplanations {
		if r.APIExplanations[i].CommonPitfalls == nil {
			r.APIExplanations[i].CommonPitfalls = []string{}
		}
	}
	r.KeyPoints = nonNil(r.KeyPoints)
	r.Pitfalls = nonNil(r.Pitfalls)
	r.ConceptLinks = nonNil(r.ConceptLinks)
	if r.ContextSyncKey == "" {
		r.ContextSyncKey = sessionID
	}
	return r
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return append([]string{}, values...)
	}
	return append([]string{}, values[:n]...)
}
