package models

// Page is a single page of list results as returned to API clients
type Page[T any] struct {
	Results      []T `json:"results"`
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// EmptyPage returns the sentinel used whenever a list lookup fails.
// Results is a non-nil empty slice so it encodes as [].
func EmptyPage[T any](page int) Page[T] {
	if page <= 0 {
		page = 1
	}
	return Page[T]{
		Results: []T{},
		Page:    page,
	}
}
