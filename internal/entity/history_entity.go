package entity

import (
	"encoding/json"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryEntry is one turn of a support session. User turns carry Text,
// assistant turns carry the worker Result.
type HistoryEntry struct {
	Role      string          `json:"role"`
	Text      string          `json:"text,omitempty"`
	Mode      string          `json:"mode,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
