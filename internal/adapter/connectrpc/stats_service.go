package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/mapping"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

type StatsServiceServer struct {
	uc usecase.StatsUsecase
}

func NewStatsServiceServer(uc usecase.StatsUsecase) *StatsServiceServer {
	return &StatsServiceServer{uc: uc}
}

// GetGlobalStats is public.
func (s *StatsServiceServer) GetGlobalStats(ctx context.Context, _ *connect.Request[cortexexv1.GetGlobalStatsRequest]) (*connect.Response[cortexexv1.GlobalStats], error) {
	result, err := s.uc.GlobalStats(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToGlobalStats(result)), nil
}

func (s *StatsServiceServer) GetProfileStats(ctx context.Context, _ *connect.Request[cortexexv1.GetProfileStatsRequest]) (*connect.Response[cortexexv1.ProfileStats], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.uc.ProfileStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToProfileStats(result)), nil
}

func (s *StatsServiceServer) GetThemeStats(ctx context.Context, req *connect.Request[cortexexv1.GetThemeStatsRequest]) (*connect.Response[cortexexv1.ThemeStats], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ThemeID <= 0 {
		return nil, invalidArgument("themeId required")
	}
	result, err := s.uc.ThemeStats(ctx, userID, req.Msg.ThemeID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToThemeStats(result)), nil
}
