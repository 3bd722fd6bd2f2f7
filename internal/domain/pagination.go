package domain

// Contact listing page defaults. The default page holds the twenty contacts a
// party invitation screen shows.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// DefaultPagination returns the first page with the default size.
func DefaultPagination() PaginationParams {
	return PaginationParams{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Window returns the [start, end) bounds of the page within a slice of length n.
func (p PaginationParams) Window(n int) (start, end int) {
	start = p.Offset()
	if start > n {
		start = n
	}
	end = start + p.PageSize
	if p.PageSize <= 0 || end > n {
		end = n
	}
	return start, end
}
