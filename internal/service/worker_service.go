package service

import (
	"context"

	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/serverutils"
	"amdlingo-be/pkg/ai/document"
	"amdlingo-be/pkg/ai/master"
	"amdlingo-be/pkg/ai/mode"
	"amdlingo-be/pkg/ai/payload"
	"amdlingo-be/pkg/ai/worker"
)

type IWorkerService interface {
	Generate(ctx context.Context, modeName string, req *dto.WorkerRequest) (*worker.WorkerResponse, error)
	Document(ctx context.Context, req *dto.DocumentLLMRequest) (*document.DocumentResult, error)
}

type workerService struct {
	dispatcher *worker.Dispatcher
	documents  worker.DocumentSynthesizer
}

func NewWorkerService(dispatcher *worker.Dispatcher, documents worker.DocumentSynthesizer) IWorkerService {
	return &workerService{
		dispatcher: dispatcher,
		documents:  documents,
	}
}

func (s *workerService) Generate(ctx context.Context, modeName string, req *dto.WorkerRequest) (*worker.WorkerResponse, error) {
	m, ok := mode.Parse(modeName)
	if !ok {
		return nil, serverutils.BadRequest("unsupported mode %q", modeName)
	}

	preprocessed, err := payload.Decode(m, req.Preprocessed)
	if err != nil {
		return nil, serverutils.BadRequest("%v", err)
	}

	decision := master.RouteDecision{
		Mode:         m,
		Preprocessed: preprocessed,
		RawInput:     req.RawInput,
		SessionID:    req.SessionID,
	}
	res, err := s.dispatcher.Generate(ctx, decision)
	if err != nil {
		return nil, serverutils.Upstream(err)
	}
	return &res, nil
}

func (s *workerService) Document(ctx context.Context, req *dto.DocumentLLMRequest) (*document.DocumentResult, error) {
	preprocessed, err := payload.Decode(mode.Document, req.Preprocessed)
	if err != nil {
		return nil, serverutils.BadRequest("%v", err)
	}

	res, err := s.documents.Synthesize(ctx, preprocessed.(payload.Document), req.SessionID)
	if err != nil {
		return nil, serverutils.Upstream(err)
	}
	return &res, nil
}
