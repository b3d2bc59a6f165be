package mapping

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/pkg/filterexpr"
)

// ToConnectError classifies domain errors into Connect codes. Errors that
// already carry a Connect code pass through unchanged.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case entity.IsValidation(err), errors.Is(err, filterexpr.ErrInvalidExpression):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case entity.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, entity.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, entity.ErrDuplicateUserName):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
