package dto

import (
	"encoding/json"

	"amdlingo-be/internal/entity"
)

type SessionCreateRequest struct {
	SessionID string `json:"session_id"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type SessionEntry struct {
	Role   string          `json:"role" validate:"required,oneof=user assistant"`
	Text   string          `json:"text"`
	Mode   string          `json:"mode"`
	Result json.RawMessage `json:"result"`
}

type SessionAppendRequest struct {
	SessionID string       `json:"session_id" validate:"required"`
	Entry     SessionEntry `json:"entry"`
}

type SessionHistoryResponse struct {
	SessionID string                `json:"session_id"`
	History   []entity.HistoryEntry `json:"history"`
}
