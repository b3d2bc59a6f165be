package mapping

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/pkg/filterexpr"
)

func TestToConnectError(t *testing.T) {
	cases := []struct {
		err  error
		want connect.Code
	}{
		{err: entity.ErrInvalidThemeTitle, want: connect.CodeInvalidArgument},
		{err: fmt.Errorf("create: %w", entity.ErrWrongContentKind), want: connect.CodeInvalidArgument},
		{err: fmt.Errorf("%w: filter: nope", filterexpr.ErrInvalidExpression), want: connect.CodeInvalidArgument},
		{err: entity.ErrThemeNotFound, want: connect.CodeNotFound},
		{err: entity.ErrEntryNotFound, want: connect.CodeNotFound},
		{err: entity.ErrForbidden, want: connect.CodePermissionDenied},
		{err: entity.ErrDuplicateUserName, want: connect.CodeAlreadyExists},
		{err: errors.New("db down"), want: connect.CodeInternal},
		{err: connect.NewError(connect.CodeUnauthenticated, errors.New("who")), want: connect.CodeUnauthenticated},
	}
	for _, tc := range cases {
		if got := connect.CodeOf(ToConnectError(tc.err)); got != tc.want {
			t.Fatalf("ToConnectError(%v) code = %v, want %v", tc.err, got, tc.want)
		}
	}
	if ToConnectError(nil) != nil {
		t.Fatalf("nil must map to nil")
	}
}
