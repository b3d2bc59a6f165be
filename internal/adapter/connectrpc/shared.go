package connectrpc

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

const _maxPageSize = 10000

func convertPagination(p *cortexexv1.PaginationRequest) repository.Pagination {
	pageNo := p.GetPageNo()
	if pageNo <= 0 {
		pageNo = 1
	}
	pageSize := p.GetPageSize()
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > _maxPageSize {
		pageSize = _maxPageSize
	}

	return repository.Pagination{PageNo: pageNo, PageSize: pageSize}
}

func convertFilterOrder(r cortexexv1.ListRequest) repository.FilterOrder {
	return repository.FilterOrder{Filter: r.Filter, OrderBy: r.OrderBy}
}

func paginationResponse(total int64, p repository.Pagination) *cortexexv1.PaginationResponse {
	return &cortexexv1.PaginationResponse{Total: total, PageNo: p.PageNo}
}

// requireUser returns the caller identity placed in ctx by the identity interceptor.
func requireUser(ctx context.Context) (int64, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return 0, connect.NewError(connect.CodeUnauthenticated, errMissingIdentity)
	}
	return userID, nil
}

func invalidArgument(msg string) error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}
