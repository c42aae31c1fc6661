package domain

import (
	"context"
)

// ContentRepository defines the uniform persistence contract shared by
// every content kind. One implementation serves all types; the
// ContentType parameter selects the logical collection.
// Implementations: internal/infra/postgres/repository.go
type ContentRepository interface {
	// GetList returns one ordered slice of items for a content type.
	// Params are normalized (limit clamped to [1,100], offset >= 0);
	// an offset past the end yields an empty slice, not an error.
	GetList(ctx context.Context, contentType ContentType, params ListParams) ([]*ContentItem, error)

	// GetDetail retrieves a single item by compound key.
	// Returns ErrNotFound when absent.
	GetDetail(ctx context.Context, contentType ContentType, id int64) (*ContentItem, error)

	// GetMore returns related items for an anchor id: the next default
	// page in GetList order with the anchor excluded.
	GetMore(ctx context.Context, contentType ContentType, id int64) ([]*ContentItem, error)

	// HotSearch returns the top items by clicks descending,
	// ties broken by id ascending.
	HotSearch(ctx context.Context, contentType ContentType, limit int) ([]*ContentItem, error)

	// IsExist reports whether the compound key exists without
	// materializing the full item.
	IsExist(ctx context.Context, contentType ContentType, id int64) (bool, error)

	// Search returns items whose title contains the query as a
	// case-insensitive substring, newest first. A blank query returns
	// an empty slice to avoid an unbounded scan.
	Search(ctx context.Context, contentType ContentType, title string) ([]*ContentItem, error)

	// UpdateClicks applies a bounded random increment to the clicks
	// counter as an atomic server-side delta. Returns the affected-row
	// count (0 or 1) and ErrNotFound when the item is absent.
	UpdateClicks(ctx context.Context, contentType ContentType, id int64) (int64, error)

	// UpdateLikes is the same protocol applied to the likes counter.
	UpdateLikes(ctx context.Context, contentType ContentType, id int64) (int64, error)

	// CountByType returns the number of items stored for a content type.
	CountByType(ctx context.Context, contentType ContentType) (int64, error)
}

// Notifier delivers outbound notifications such as the hot-content digest.
// Implementations: internal/infra/mail/client.go
type Notifier interface {
	// Name returns the unique identifier for this notifier.
	Name() string

	// Send delivers a message with the given subject and body.
	Send(ctx context.Context, subject, body string) error

	// HealthCheck verifies the delivery backend is reachable.
	HealthCheck(ctx context.Context) error
}
