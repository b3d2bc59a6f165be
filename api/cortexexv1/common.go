package cortexexv1

// Empty is the response of operations that return nothing.
type Empty struct{}

// IDRequest addresses a single record.
type IDRequest struct {
	ID int64 `json:"id"`
}

func (r *IDRequest) GetID() int64 {
	if r == nil {
		return 0
	}
	return r.ID
}

// PaginationRequest selects a 1-based page.
type PaginationRequest struct {
	PageNo   int32 `json:"pageNo"`
	PageSize int32 `json:"pageSize"`
}

func (p *PaginationRequest) GetPageNo() int32 {
	if p == nil {
		return 0
	}
	return p.PageNo
}

func (p *PaginationRequest) GetPageSize() int32 {
	if p == nil {
		return 0
	}
	return p.PageSize
}

// PaginationResponse reports the total matched rows and the served page.
type PaginationResponse struct {
	Total  int64 `json:"total"`
	PageNo int32 `json:"pageNo"`
}

// ListRequest is shared by every list endpoint.
type ListRequest struct {
	Pagination *PaginationRequest `json:"pagination,omitempty"`
	Filter     string             `json:"filter,omitempty"`
	OrderBy    string             `json:"orderBy,omitempty"`
}
