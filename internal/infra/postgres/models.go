package postgres

import (
	"time"

	"content-service/internal/domain"

	"github.com/lib/pq"
)

// ContentModel is the GORM model for the contents table.
// (id, content_type) is the composite primary key: ids are only unique
// within one content kind.
type ContentModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement:false"`
	ContentType string         `gorm:"type:varchar(20);primaryKey"`
	Title       string         `gorm:"type:varchar(500);not null"`
	Tags        pq.StringArray `gorm:"type:text[]"`

	// Popularity counters
	Clicks int64 `gorm:"not null;default:0"`
	Likes  int64 `gorm:"not null;default:0"`

	// Timestamps; created_at is the ordering key
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for ContentModel.
func (ContentModel) TableName() string {
	return "contents"
}

// ToDomain converts ContentModel to domain.ContentItem.
func (m *ContentModel) ToDomain() *domain.ContentItem {
	return &domain.ContentItem{
		ID:        m.ID,
		Type:      domain.ContentType(m.ContentType),
		Title:     m.Title,
		Tags:      m.Tags,
		Clicks:    m.Clicks,
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain creates a ContentModel from domain.ContentItem.
func FromDomain(c *domain.ContentItem) *ContentModel {
	return &ContentModel{
		ID:          c.ID,
		ContentType: string(c.Type),
		Title:       c.Title,
		Tags:        c.Tags,
		Clicks:      c.Clicks,
		Likes:       c.Likes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// toDomainSlice converts a slice of models to domain items.
func toDomainSlice(models []ContentModel) []*domain.ContentItem {
	items := make([]*domain.ContentItem, len(models))
	for i := range models {
		items[i] = models[i].ToDomain()
	}

	return items
}
