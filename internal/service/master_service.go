package service

import (
	"context"

	"amdlingo-be/internal/dto"
	"amdlingo-be/pkg/ai/master"
)

type IMasterService interface {
	Route(ctx context.Context, req *dto.RouteRequest) (*master.RouteDecision, error)
}

type masterService struct {
	router *master.Router
}

func NewMasterService(router *master.Router) IMasterService {
	return &masterService{router: router}
}

// Route never fails; unknown modes and failed fetches degrade to defaults.
func (s *masterService) Route(ctx context.Context, req *dto.RouteRequest) (*master.RouteDecision, error) {
	decision := s.router.Route(ctx, req.ToRouteRequest())
	return &decision, nil
}
