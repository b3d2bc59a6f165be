package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/mapping"
	"github.com/Swatkovich/cortexex-sub000/internal/usecase"
)

type UserServiceServer struct {
	uc usecase.UserUsecase
}

func NewUserServiceServer(uc usecase.UserUsecase) *UserServiceServer {
	return &UserServiceServer{uc: uc}
}

func (s *UserServiceServer) Register(ctx context.Context, req *connect.Request[cortexexv1.RegisterRequest]) (*connect.Response[cortexexv1.User], error) {
	if req.Msg == nil {
		return nil, invalidArgument("request required")
	}
	result, err := s.uc.Register(ctx, req.Msg.Name, req.Msg.Password)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToUser(result)), nil
}
