// Package payload holds the mode-specific preprocessed records produced by
// the master router. Each mode has exactly one record type; Payload is a
// closed union over them.
package payload

import (
	"encoding/json"
	"fmt"

	"amdlingo-be/pkg/ai/mode"
)

// Payload is implemented only by the record types in this package.
type Payload interface {
	Mode() mode.Mode
	isPayload()
}

type Document struct {
	URL              string            `json:"url"`
	Title            string            `json:"title"`
	APIList          []string          `json:"api_list"`
	SectionHeaders   []string          `json:"section_headers"`
	RawText          string            `json:"raw_text"`
	DocumentCategory string            `json:"document_category"`
	SectionContents  map[string]string `json:"section_contents"`
}

type Code struct {
	Language        string            `json:"language"`
	APIList         []string          `json:"api_list"`
	NormalizedCode  string            `json:"normalized_code"`
	IssuesFound     []string          `json:"issues_found"`
	KernelBlocks    []string          `json:"kernel_blocks"`
	PointerMetadata map[string]string `json:"pointer_metadata"`
}

type Error struct {
	ErrorType       string            `json:"error_type"`
	ErrorMessage    string            `json:"error_message"`
	LikelyAPI       string            `json:"likely_api"`
	StackTrace      []string          `json:"stack_trace"`
	CodeContext     string            `json:"code_context"`
	PointerMetadata map[string]string `json:"pointer_metadata"`
}

// Mapping is one known CUDA to HIP substitution.
type Mapping struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Hipify struct {
	OriginalCode        string    `json:"original_code"`
	HipifiedCodeStatic  string    `json:"hipified_code_static"`
	MappingReport       []Mapping `json:"mapping_report"`
	UnconvertedSegments []string  `json:"unconverted_segments"`
}

// APIMetadata is left empty by preprocessing; the worker fills it.
type APIMetadata struct {
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
	Return      string   `json:"return"`
	Category    string   `json:"category"`
}

type API struct {
	APIName  string      `json:"api_name"`
	Metadata APIMetadata `json:"metadata"`
}

func (Document) Mode() mode.Mode { return mode.Document }
func (Code) Mode() mode.Mode     { return mode.Code }
func (Error) Mode() mode.Mode    { return mode.Error }
func (Hipify) Mode() mode.Mode   { return mode.Hipify }
func (API) Mode() mode.Mode      { return mode.API }

func (Document) isPayload() {}
func (Code) isPayload()     {}
func (Error) isPayload()    {}
func (Hipify) isPayload()   {}
func (API) isPayload()      {}

// Decode reads raw JSON into the record type selected by m. An empty or
// null body decodes to that type's zero value.
func Decode(m mode.Mode, raw json.RawMessage) (Payload, error) {
	switch m {
	case mode.Document:
		var p Document
		err := unmarshal(raw, &p)
		return p, err
	case mode.Code:
		var p Code
		err := unmarshal(raw, &p)
		return p, err
	case mode.Error:
		var p Error
		err := unmarshal(raw, &p)
		return p, err
	case mode.Hipify:
		var p Hipify
		err := unmarshal(raw, &p)
		return p, err
	case mode.API:
		var p API
		err := unmarshal(raw, &p)
		return p, err
	default:
		return nil, fmt.Errorf("unsupported mode %q", m)
	}
}

func unmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// Encode wraps a payload in the envelope used on the wire and in events.
func Encode(p Payload) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return map[string]any{}
	}
	out := make(map[string]any)
	_ = json.Unmarshal(data, &out)
	return out
}
