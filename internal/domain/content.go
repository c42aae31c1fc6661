// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"time"
)

// ContentType distinguishes which logical collection an item belongs to.
// All collections share one repository contract.
type ContentType string

const (
	ContentTypeHome    ContentType = "home"
	ContentTypeVideo   ContentType = "video"
	ContentTypeArticle ContentType = "article"
)

// ContentTypes lists every supported content type.
func ContentTypes() []ContentType {
	return []ContentType{ContentTypeHome, ContentTypeVideo, ContentTypeArticle}
}

// Valid reports whether the content type is one of the supported kinds.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeHome, ContentTypeVideo, ContentTypeArticle:
		return true
	}

	return false
}

// ContentItem is the stored entity for one content kind.
// (ID, Type) forms the compound key; ID is unique within a type.
type ContentItem struct {
	ID   int64       `json:"id"`
	Type ContentType `json:"type"`

	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`

	// Popularity counters. Mutated only by the counter increment
	// operations; never decremented.
	Clicks int64 `json:"clicks"`
	Likes  int64 `json:"likes"`

	// CreatedAt is the ordering key for chronological listing.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContentItem creates a ContentItem with zeroed counters and timestamps set.
func NewContentItem(id int64, contentType ContentType, title string) *ContentItem {
	now := time.Now().UTC()
	return &ContentItem{
		ID:        id,
		Type:      contentType,
		Title:     title,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key returns the compound identity of the item.
func (c *ContentItem) Key() ContentKey {
	return ContentKey{ID: c.ID, Type: c.Type}
}

// ContentKey is the (id, contentType) compound key.
type ContentKey struct {
	ID   int64
	Type ContentType
}

// CounterField names a popularity counter on a ContentItem.
type CounterField string

const (
	CounterClicks CounterField = "clicks"
	CounterLikes  CounterField = "likes"
)
