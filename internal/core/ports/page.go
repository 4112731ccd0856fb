package ports

// Page is an offset-paginated result set.
type Page[T any] struct {
	Items       []T
	Total       int64
	TotalPages  int
	CurrentPage int
}

// NewPage computes the page-count bookkeeping for a result set.
func NewPage[T any](items []T, total int64, page, limit int) *Page[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Page[T]{
		Items:       items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
