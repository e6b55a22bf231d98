package models

// PagedResponse wraps a page of items together with the size of the
// filtered set before pagination, so clients can derive the page count.
type PagedResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}
