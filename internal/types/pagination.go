package types

// Pagination describes one page of a listing
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// Offset returns the number of rows skipped before this page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is a slice of records plus the total number of records the user owns
type Page[T any] struct {
	Data  []T
	Total int64
}

// PaginatedResponse is the JSON envelope of every list endpoint
type PaginatedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
