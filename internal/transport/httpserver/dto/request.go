// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import "content-service/internal/domain"

// ListRequest represents the query parameters for listing contents.
// Page addressing is 1-based; order defaults to descending (newest first).
type ListRequest struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Order    string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// ToListParams converts ListRequest to domain.ListParams.
func (r *ListRequest) ToListParams() domain.ListParams {
	page := r.Page
	if page < 1 {
		page = 1
	}

	order := domain.OrderDesc
	if r.Order == string(domain.OrderAsc) {
		order = domain.OrderAsc
	}

	return domain.PageParams(page, r.PageSize, order)
}

// HotSearchRequest represents the query parameters for the hot listing.
type HotSearchRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// SearchRequest represents the query parameters for title search.
type SearchRequest struct {
	Title string `query:"title" validate:"max=200"`
}
