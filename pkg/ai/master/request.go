// Package master decides which worker handles a piece of support text and
// builds the structured hints that worker starts from.
package master

import (
	"encoding/json"
	"fmt"

	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/ai/payload"
)

// RouteRequest is the raw input to the router. ExplicitMode and
// AllowedModes hold unvalidated strings; the router tolerates garbage in
// both.
type RouteRequest struct {
	Text         string   `json:"text"`
	SessionID    string   `json:"session_id"`
	ExplicitMode string   `json:"explicit_mode,omitempty"`
	AllowedModes []string `json:"parallel_modes,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Source records which step of the resolution order produced a decision.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceRules    Source = "rules"
	SourceScores   Source = "scores"
)

type RouteDecision struct {
	Mode         mode.Mode       `json:"mode"`
	Preprocessed payload.Payload `json:"preprocessed"`
	RawInput     string          `json:"raw_input"`
	SessionID    string          `json:"session_id"`
}

// UnmarshalJSON decodes preprocessed into the record type named by mode.
func (d *RouteDecision) UnmarshalJSON(data []byte) error {
	var wire struct {
		Mode         string          `json:"mode"`
		Preprocessed json.RawMessage `json:"preprocessed"`
		RawInput     string          `json:"raw_input"`
		SessionID    string          `json:"session_id"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	m, ok := mode.Parse(wire.Mode)
	if !ok {
		return fmt.Errorf("unknown mode %q", wire.Mode)
	}
	p, err := payload.Decode(m, wire.Preprocessed)
	if err != nil {
		return err
	}

	d.Mode = m
	d.Preprocessed = p
	d.RawInput = wire.RawInput
	d.SessionID = wire.SessionID
	return nil
}
