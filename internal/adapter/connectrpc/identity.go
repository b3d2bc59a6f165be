package connectrpc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
)

// UserIDHeader carries the authenticated player id set by the upstream gateway.
const UserIDHeader = "X-User-Id"

var errMissingIdentity = errors.New("missing or invalid " + UserIDHeader + " header")

var publicProcedures = map[string]struct{}{
	cortexexv1.StatsServiceGetGlobalStatsProcedure: {},
	cortexexv1.UserServiceRegisterProcedure:        {},
}

type userIDKey struct{}

// ContextWithUserID stores the caller identity.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the caller identity, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok && userID > 0
}

// NewIdentityInterceptor resolves the caller from UserIDHeader. Every
// procedure except the public ones rejects calls without a valid id.
func NewIdentityInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			userID, err := parseUserID(req.Header().Get(UserIDHeader))
			if err == nil {
				ctx = ContextWithUserID(ctx, userID)
			} else if _, public := publicProcedures[req.Spec().Procedure]; !public {
				return nil, connect.NewError(connect.CodeUnauthenticated, errMissingIdentity)
			}
			return next(ctx, req)
		}
	}
}

func parseUserID(raw string) (int64, error) {
	userID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if userID <= 0 {
		return 0, errMissingIdentity
	}
	return userID, nil
}
