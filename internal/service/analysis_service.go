package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/entity"
	"amdlingo-be/internal/pkg/logger"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/internal/repository/contract"
	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/ai/worker"

	"github.com/google/uuid"
)

const analysisModule = "AnalysisService"

type IAnalysisService interface {
	// Analyze routes req, answers it and records both turns in the session
	// history. forcedMode is used when the request names no explicit mode.
	Analyze(ctx context.Context, req *dto.AnalyzeRequest, forcedMode mode.Mode, endpoint string) (*dto.BackendResponse, error)
}

type analysisService struct {
	router     *master.Router
	dispatcher *worker.Dispatcher
	sessions   contract.SessionHistoryRepository
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewAnalysisService(
	router *master.Router,
	dispatcher *worker.Dispatcher,
	sessions contract.SessionHistoryRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		router:     router,
		dispatcher: dispatcher,
		sessions:   sessions,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *dto.AnalyzeRequest, forcedMode mode.Mode, endpoint string) (*dto.BackendResponse, error) {
	start := time.Now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if err := s.sessions.Create(ctx, sessionID); err != nil {
		return nil, err
	}

	explicit := req.ExplicitMode
	if explicit == "" {
		explicit = string(forcedMode)
	}
	routeReq := req.ToRouteRequest(explicit)
	routeReq.SessionID = sessionID
	if len(routeReq.AllowedModes) == 0 {
		routeReq.AllowedModes = mode.Strings(mode.All())
	}

	decision := s.router.Route(ctx, routeReq)

	res, err := s.dispatcher.Generate(ctx, decision)
	if err != nil {
		s.logger.Error(analysisModule, "Worker failed", map[string]interface{}{
			"session_id": sessionID,
			"mode":       string(decision.Mode),
			"error":      err.Error(),
		})
		return nil, serverutils.Upstream(err)
	}

	resultJSON, err := json.Marshal(res.Result)
	if err != nil {
		return nil, fmt.Errorf("encode worker result: %w", err)
	}

	now := time.Now()
	userEntry := entity.HistoryEntry{
		Role:      entity.RoleUser,
		Text:      req.Text,
		Mode:      string(decision.Mode),
		CreatedAt: now,
	}
	assistantEntry := entity.HistoryEntry{
		Role:      entity.RoleAssistant,
		Mode:      string(res.Mode),
		Result:    resultJSON,
		CreatedAt: now,
	}
	if err := s.sessions.Append(ctx, sessionID, userEntry); err != nil {
		return nil, err
	}
	if err := s.sessions.Append(ctx, sessionID, assistantEntry); err != nil {
		return nil, err
	}

	s.publishCompleted(ctx, sessionID, string(res.Mode), endpoint, time.Since(start))

	return &dto.BackendResponse{
		Mode:      string(res.Mode),
		Result:    res.Result,
		SessionID: res.SessionID,
		Usage:     res.Usage,
	}, nil
}

func (s *analysisService) publishCompleted(ctx context.Context, sessionID, modeName, endpoint string, latency time.Duration) {
	if s.publisher == nil {
		return
	}
	msgJson, err := json.Marshal(dto.AnalysisCompletedMessage{
		SessionID: sessionID,
		Mode:      modeName,
		Endpoint:  endpoint,
		LatencyMs: latency.Milliseconds(),
	})
	if err != nil {
		return
	}
	// The answer is already stored; a lost event only costs a log line.
	if err := s.publisher.Publish(ctx, msgJson); err != nil {
		s.logger.Warn(analysisModule, "Failed to publish analysis event", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}
