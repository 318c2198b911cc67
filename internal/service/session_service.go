package service

import (
	"bytes"
	"context"
	"time"

	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/entity"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.SessionCreateRequest) (*dto.SessionHistoryResponse, error)
	Append(ctx context.Context, req *dto.SessionAppendRequest) (*dto.SessionHistoryResponse, error)
	History(ctx context.Context, sessionID string) (*dto.SessionHistoryResponse, error)
}

type sessionService struct {
	repo contract.SessionHistoryRepository
}

func NewSessionService(repo contract.SessionHistoryRepository) ISessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) Create(ctx context.Context, req *dto.SessionCreateRequest) (*dto.SessionHistoryResponse, error) {
	id := req.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	if err := s.repo.Create(ctx, id); err != nil {
		return nil, err
	}
	return s.History(ctx, id)
}

func (s *sessionService) Append(ctx context.Context, req *dto.SessionAppendRequest) (*dto.SessionHistoryResponse, error) {
	entry := req.Entry
	switch {
	case entry.Role == entity.RoleAssistant && isJSONEmpty(entry.Result):
		return nil, serverutils.BadRequest("assistant entry requires result")
	case entry.Role == entity.RoleUser && entry.Text == "":
		return nil, serverutils.BadRequest("user entry requires text")
	}

	record := entity.HistoryEntry{
		Role:      entry.Role,
		Text:      entry.Text,
		Mode:      entry.Mode,
		CreatedAt: time.Now(),
	}
	if !isJSONEmpty(entry.Result) {
		record.Result = entry.Result
	}

	if err := s.repo.Append(ctx, req.SessionID, record); err != nil {
		return nil, err
	}
	return s.History(ctx, req.SessionID)
}

func (s *sessionService) History(ctx context.Context, sessionID string) (*dto.SessionHistoryResponse, error) {
	if sessionID == "" {
		return nil, serverutils.BadRequest("session_id is required")
	}
	history, err := s.repo.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.SessionHistoryResponse{
		SessionID: sessionID,
		History:   history,
	}, nil
}

func isJSONEmpty(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
