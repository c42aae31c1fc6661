package dto

import (
	"time"

	"content-service/internal/domain"
)

// ContentResponse represents a single content item in the response.
type ContentResponse struct {
	ID    int64    `json:"id"`
	Type  string   `json:"type"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`

	// Popularity counters
	Clicks int64 `json:"clicks"`
	Likes  int64 `json:"likes"`

	// Timestamps
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FromDomainItem converts domain.ContentItem to ContentResponse.
func FromDomainItem(c *domain.ContentItem) ContentResponse {
	return ContentResponse{
		ID:        c.ID,
		Type:      string(c.Type),
		Title:     c.Title,
		Tags:      c.Tags,
		Clicks:    c.Clicks,
		Likes:     c.Likes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// ListResponse represents a slice of content items.
type ListResponse struct {
	Contents []ContentResponse `json:"contents"`
	Count    int               `json:"count"`
}

// FromDomainItems converts a slice of domain items to ListResponse.
func FromDomainItems(items []*domain.ContentItem) ListResponse {
	contents := make([]ContentResponse, len(items))
	for i, item := range items {
		contents[i] = FromDomainItem(item)
	}

	return ListResponse{
		Contents: contents,
		Count:    len(contents),
	}
}

// ExistsResponse represents an existence check result.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// CounterUpdateResponse represents the outcome of a counter increment:
// the affected-row count from the save plus the refreshed item.
type CounterUpdateResponse struct {
	AffectedRows int64           `json:"affected_rows"`
	Content      ContentResponse `json:"content"`
}

// FromCounterUpdate builds a CounterUpdateResponse.
func FromCounterUpdate(item *domain.ContentItem, affected int64) CounterUpdateResponse {
	return CounterUpdateResponse{
		AffectedRows: affected,
		Content:      FromDomainItem(item),
	}
}

// HealthResponse represents health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
