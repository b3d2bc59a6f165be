package connectrpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/adapter/mapping"
)

// Services groups every Connect service served by the API.
type Services struct {
	Stats *StatsServiceServer
	Play  *PlayServiceServer
	Theme *ThemeServiceServer
	User  *UserServiceServer
}

// NewHandler mounts all procedures on one mux. The given interceptors wrap
// the identity and error mapping interceptors, in order.
func NewHandler(svcs *Services, interceptors ...connect.Interceptor) http.Handler {
	interceptors = append(interceptors, NewIdentityInterceptor(), errorInterceptor())
	opts := []connect.HandlerOption{
		connect.WithCodec(JSONCodec{}),
		connect.WithInterceptors(interceptors...),
	}

	mux := http.NewServeMux()
	handle := func(procedure string, h http.Handler) {
		mux.Handle(procedure, h)
	}

	handle(cortexexv1.StatsServiceGetGlobalStatsProcedure, connect.NewUnaryHandler(cortexexv1.StatsServiceGetGlobalStatsProcedure, svcs.Stats.GetGlobalStats, opts...))
	handle(cortexexv1.StatsServiceGetProfileStatsProcedure, connect.NewUnaryHandler(cortexexv1.StatsServiceGetProfileStatsProcedure, svcs.Stats.GetProfileStats, opts...))
	handle(cortexexv1.StatsServiceGetThemeStatsProcedure, connect.NewUnaryHandler(cortexexv1.StatsServiceGetThemeStatsProcedure, svcs.Stats.GetThemeStats, opts...))

	handle(cortexexv1.PlayServiceBuildSessionPoolProcedure, connect.NewUnaryHandler(cortexexv1.PlayServiceBuildSessionPoolProcedure, svcs.Play.BuildSessionPool, opts...))
	handle(cortexexv1.PlayServiceGradeAnswerProcedure, connect.NewUnaryHandler(cortexexv1.PlayServiceGradeAnswerProcedure, svcs.Play.GradeAnswer, opts...))
	handle(cortexexv1.PlayServiceRecordSessionResultProcedure, connect.NewUnaryHandler(cortexexv1.PlayServiceRecordSessionResultProcedure, svcs.Play.RecordSessionResult, opts...))
	handle(cortexexv1.PlayServiceListSessionsProcedure, connect.NewUnaryHandler(cortexexv1.PlayServiceListSessionsProcedure, svcs.Play.ListSessions, opts...))

	handle(cortexexv1.ThemeServiceCreateThemeProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceCreateThemeProcedure, svcs.Theme.CreateTheme, opts...))
	handle(cortexexv1.ThemeServiceUpdateThemeProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceUpdateThemeProcedure, svcs.Theme.UpdateTheme, opts...))
	handle(cortexexv1.ThemeServiceGetThemeProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceGetThemeProcedure, svcs.Theme.GetTheme, opts...))
	handle(cortexexv1.ThemeServiceListThemesProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceListThemesProcedure, svcs.Theme.ListThemes, opts...))
	handle(cortexexv1.ThemeServiceDeleteThemeProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceDeleteThemeProcedure, svcs.Theme.DeleteTheme, opts...))
	handle(cortexexv1.ThemeServiceCreateQuestionProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceCreateQuestionProcedure, svcs.Theme.CreateQuestion, opts...))
	handle(cortexexv1.ThemeServiceUpdateQuestionProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceUpdateQuestionProcedure, svcs.Theme.UpdateQuestion, opts...))
	handle(cortexexv1.ThemeServiceDeleteQuestionProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceDeleteQuestionProcedure, svcs.Theme.DeleteQuestion, opts...))
	handle(cortexexv1.ThemeServiceListQuestionsProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceListQuestionsProcedure, svcs.Theme.ListQuestions, opts...))
	handle(cortexexv1.ThemeServiceCreateEntryProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceCreateEntryProcedure, svcs.Theme.CreateEntry, opts...))
	handle(cortexexv1.ThemeServiceUpdateEntryProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceUpdateEntryProcedure, svcs.Theme.UpdateEntry, opts...))
	handle(cortexexv1.ThemeServiceDeleteEntryProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceDeleteEntryProcedure, svcs.Theme.DeleteEntry, opts...))
	handle(cortexexv1.ThemeServiceListEntriesProcedure, connect.NewUnaryHandler(cortexexv1.ThemeServiceListEntriesProcedure, svcs.Theme.ListEntries, opts...))

	handle(cortexexv1.UserServiceRegisterProcedure, connect.NewUnaryHandler(cortexexv1.UserServiceRegisterProcedure, svcs.User.Register, opts...))

	return mux
}

// errorInterceptor converts domain errors returned by the services into
// Connect codes.
func errorInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			resp, err := next(ctx, req)
			if err != nil {
				return nil, mapping.ToConnectError(err)
			}
			return resp, nil
		}
	}
}
