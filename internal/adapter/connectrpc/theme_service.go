package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/mapping"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

type ThemeServiceServer struct {
	uc usecase.ThemeUsecase
}

func NewThemeServiceServer(uc usecase.ThemeUsecase) *ThemeServiceServer {
	return &ThemeServiceServer{uc: uc}
}

func (s *ThemeServiceServer) CreateTheme(ctx context.Context, req *connect.Request[cortexexv1.CreateThemeRequest]) (*connect.Response[cortexexv1.Theme], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.uc.CreateTheme(ctx, userID, mapping.FromCreateThemeRequest(req.Msg))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToTheme(result)), nil
}

func (s *ThemeServiceServer) UpdateTheme(ctx context.Context, req *connect.Request[cortexexv1.UpdateThemeRequest]) (*connect.Response[cortexexv1.Theme], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID <= 0 {
		return nil, invalidArgument("id required")
	}
	result, err := s.uc.UpdateTheme(ctx, userID, mapping.FromUpdateThemeRequest(req.Msg))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToTheme(result)), nil
}

func (s *ThemeServiceServer) GetTheme(ctx context.Context, req *connect.Request[cortexexv1.IDRequest]) (*connect.Response[cortexexv1.Theme], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.uc.GetTheme(ctx, userID, req.Msg.GetID())
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToTheme(result)), nil
}

func (s *ThemeServiceServer) ListThemes(ctx context.Context, req *connect.Request[cortexexv1.ListThemesRequest]) (*connect.Response[cortexexv1.ListThemesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	query := &repository.ListThemeQuery{
		Pagination:  convertPagination(req.Msg.Pagination),
		FilterOrder: convertFilterOrder(req.Msg.ListRequest),
		UserID:      userID,
	}
	items, total, err := s.uc.ListThemes(ctx, query)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.ListThemesResponse{
		Themes:     mapping.ToThemes(items),
		Pagination: paginationResponse(total, query.Pagination),
	}), nil
}

func (s *ThemeServiceServer) DeleteTheme(ctx context.Context, req *connect.Request[cortexexv1.IDRequest]) (*connect.Response[cortexexv1.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.DeleteTheme(ctx, userID, req.Msg.GetID()); err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.Empty{}), nil
}

func (s *ThemeServiceServer) CreateQuestion(ctx context.Context, req *connect.Request[cortexexv1.QuestionRequest]) (*connect.Response[cortexexv1.Question], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	question := mapping.FromQuestionRequest(req.Msg)
	question.ID = 0
	result, err := s.uc.CreateQuestion(ctx, userID, question)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToQuestion(result)), nil
}

func (s *ThemeServiceServer) UpdateQuestion(ctx context.Context, req *connect.Request[cortexexv1.QuestionRequest]) (*connect.Response[cortexexv1.Question], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID <= 0 {
		return nil, invalidArgument("id required")
	}
	result, err := s.uc.UpdateQuestion(ctx, userID, mapping.FromQuestionRequest(req.Msg))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToQuestion(result)), nil
}

func (s *ThemeServiceServer) DeleteQuestion(ctx context.Context, req *connect.Request[cortexexv1.IDRequest]) (*connect.Response[cortexexv1.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.DeleteQuestion(ctx, userID, req.Msg.GetID()); err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.Empty{}), nil
}

func (s *ThemeServiceServer) ListQuestions(ctx context.Context, req *connect.Request[cortexexv1.ListQuestionsRequest]) (*connect.Response[cortexexv1.ListQuestionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	query := &repository.ListQuestionQuery{
		Pagination:  convertPagination(req.Msg.Pagination),
		FilterOrder: convertFilterOrder(req.Msg.ListRequest),
		ThemeID:     req.Msg.ThemeID,
	}
	items, total, err := s.uc.ListQuestions(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.ListQuestionsResponse{
		Questions:  mapping.ToQuestions(items),
		Pagination: paginationResponse(total, query.Pagination),
	}), nil
}

func (s *ThemeServiceServer) CreateEntry(ctx context.Context, req *connect.Request[cortexexv1.EntryRequest]) (*connect.Response[cortexexv1.LanguageEntry], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	entry := mapping.FromEntryRequest(req.Msg)
	entry.ID = 0
	result, err := s.uc.CreateEntry(ctx, userID, entry)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToEntry(result)), nil
}

func (s *ThemeServiceServer) UpdateEntry(ctx context.Context, req *connect.Request[cortexexv1.EntryRequest]) (*connect.Response[cortexexv1.LanguageEntry], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID <= 0 {
		return nil, invalidArgument("id required")
	}
	result, err := s.uc.UpdateEntry(ctx, userID, mapping.FromEntryRequest(req.Msg))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToEntry(result)), nil
}

func (s *ThemeServiceServer) DeleteEntry(ctx context.Context, req *connect.Request[cortexexv1.IDRequest]) (*connect.Response[cortexexv1.Empty], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.uc.DeleteEntry(ctx, userID, req.Msg.GetID()); err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.Empty{}), nil
}

func (s *ThemeServiceServer) ListEntries(ctx context.Context, req *connect.Request[cortexexv1.ListEntriesRequest]) (*connect.Response[cortexexv1.ListEntriesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	query := &repository.ListEntryQuery{
		Pagination:  convertPagination(req.Msg.Pagination),
		FilterOrder: convertFilterOrder(req.Msg.ListRequest),
		ThemeID:     req.Msg.ThemeID,
	}
	items, total, err := s.uc.ListEntries(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&cortexexv1.ListEntriesResponse{
		Entries:    mapping.ToEntries(items),
		Pagination: paginationResponse(total, query.Pagination),
	}), nil
}
