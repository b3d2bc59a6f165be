package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/mapping"
	"github.com/Swatkovich/cortexex-sub000/internal/quiz"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

type PlayServiceServer struct {
	play     usecase.PlayUsecase
	sessions usecase.SessionUsecase
}

func NewPlayServiceServer(play usecase.PlayUsecase, sessions usecase.SessionUsecase) *PlayServiceServer {
	return &PlayServiceServer{play: play, sessions: sessions}
}

func (s *PlayServiceServer) BuildSessionPool(ctx context.Context, req *connect.Request[cortexexv1.BuildSessionPoolRequest]) (*connect.Response[cortexexv1.BuildSessionPoolResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	items, err := s.play.BuildSessionPool(ctx, userID, usecase.PoolRequest{
		ThemeIDs: msg.ThemeIDs,
		Mode:     msg.Mode,
		Count:    int(msg.Count),
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.BuildSessionPoolResponse{
		Questions: mapping.ToPlayQuestions(items),
	}), nil
}

// GradeAnswer returns a nil verdict for items that are not graded.
func (s *PlayServiceServer) GradeAnswer(ctx context.Context, req *connect.Request[cortexexv1.GradeAnswerRequest]) (*connect.Response[cortexexv1.GradeAnswerResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	if req.Msg.Question == nil {
		return nil, invalidArgument("question required")
	}
	verdict := s.play.GradeAnswer(mapping.FromPlayQuestion(req.Msg.Question), quiz.Answer{
		Text:     req.Msg.Answer,
		Selected: req.Msg.Selected,
	})
	return connect.NewResponse(&cortexexv1.GradeAnswerResponse{IsCorrect: verdict.Bool()}), nil
}

func (s *PlayServiceServer) RecordSessionResult(ctx context.Context, req *connect.Request[cortexexv1.RecordSessionResultRequest]) (*connect.Response[cortexexv1.RecordSessionResultResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.sessions.RecordSessionResult(ctx, userID, mapping.FromRecordSessionResultRequest(req.Msg))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.RecordSessionResultResponse{Accepted: true, SessionID: summary.ID}), nil
}

func (s *PlayServiceServer) ListSessions(ctx context.Context, req *connect.Request[cortexexv1.ListSessionsRequest]) (*connect.Response[cortexexv1.ListSessionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	query := &repository.ListSessionQuery{
		Pagination:  convertPagination(req.Msg.Pagination),
		FilterOrder: convertFilterOrder(req.Msg.ListRequest),
		UserID:      userID,
	}
	items, total, err := s.sessions.ListSessions(ctx, query)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.ListSessionsResponse{
		Sessions:   mapping.ToSessions(items),
		Pagination: paginationResponse(total, query.Pagination),
	}), nil
}
