package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"content-service/internal/domain"
)

// Repository implements domain.ContentRepository using PostgreSQL.
// One instance serves every content type; the type column scopes all
// queries.
type Repository struct {
	db    *gorm.DB
	boost domain.BoostRange
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB, boost domain.BoostRange) *Repository {
	boost.Normalize()

	return &Repository{db: db, boost: boost}
}

// GetList returns one ordered slice of items for a content type.
func (r *Repository) GetList(ctx context.Context, contentType domain.ContentType, params domain.ListParams) ([]*domain.ContentItem, error) {
	params.Normalize()

	var models []ContentModel
	err := r.db.WithContext(ctx).
		Where("content_type = ?", string(contentType)).
		Order(orderClause(params.Order)).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing contents: %w", err)
	}

	return toDomainSlice(models), nil
}

// GetDetail retrieves a single item by its compound key.
func (r *Repository) GetDetail(ctx context.Context, contentType domain.ContentType, id int64) (*domain.ContentItem, error) {
	var model ContentModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND content_type = ?", id, string(contentType)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("getting content detail: %w", err)
	}

	return model.ToDomain(), nil
}

// GetMore returns related items for an anchor id: the next default page
// in GetList order with the anchor excluded.
func (r *Repository) GetMore(ctx context.Context, contentType domain.ContentType, id int64) ([]*domain.ContentItem, error) {
	var models []ContentModel
	err := r.db.WithContext(ctx).
		Where("content_type = ? AND id <> ?", string(contentType), id).
		Order(orderClause(domain.OrderDesc)).
		Limit(domain.DefaultPageSize).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("getting more contents: %w", err)
	}

	return toDomainSlice(models), nil
}

// HotSearch returns the top items by clicks descending, ties broken by
// id ascending.
func (r *Repository) HotSearch(ctx context.Context, contentType domain.ContentType, limit int) ([]*domain.ContentItem, error) {
	var models []ContentModel
	err := r.db.WithContext(ctx).
		Where("content_type = ?", string(contentType)).
		Order("clicks DESC, id ASC").
		Limit(domain.ClampLimit(limit)).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("hot searching contents: %w", err)
	}

	return toDomainSlice(models), nil
}

// IsExist reports whether the compound key exists. Uses a count
// projection so the row is never materialized.
func (r *Repository) IsExist(ctx context.Context, contentType domain.ContentType, id int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Model(&ContentModel{}).
		Select("count(*) > 0").
		Where("id = ? AND content_type = ?", id, string(contentType)).
		Find(&exists).Error
	if err != nil {
		return false, fmt.Errorf("checking content existence: %w", err)
	}

	return exists, nil
}

// Search returns items whose title contains the query as a
// case-insensitive substring, newest first. A blank query returns an
// empty slice rather than scanning the whole table.
func (r *Repository) Search(ctx context.Context, contentType domain.ContentType, title string) ([]*domain.ContentItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return []*domain.ContentItem{}, nil
	}

	var models []ContentModel
	err := r.db.WithContext(ctx).
		Where("content_type = ?", string(contentType)).
		Where("title ILIKE ? ESCAPE '\\'", "%"+escapeLike(title)+"%").
		Order(orderClause(domain.OrderDesc)).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("searching contents: %w", err)
	}

	return toDomainSlice(models), nil
}

// UpdateClicks increments the clicks counter by a bounded random amount.
func (r *Repository) UpdateClicks(ctx context.Context, contentType domain.ContentType, id int64) (int64, error) {
	return r.incrementCounter(ctx, contentType, id, domain.CounterClicks)
}

// UpdateLikes increments the likes counter by a bounded random amount.
func (r *Repository) UpdateLikes(ctx context.Context, contentType domain.ContentType, id int64) (int64, error) {
	return r.incrementCounter(ctx, contentType, id, domain.CounterLikes)
}

// incrementCounter applies the increment as an atomic server-side delta
// (counter = counter + ?), so concurrent callers never lose updates.
// There is no read-modify-write window to race over.
func (r *Repository) incrementCounter(ctx context.Context, contentType domain.ContentType, id int64, field domain.CounterField) (int64, error) {
	column, err := counterColumn(field)
	if err != nil {
		return 0, err
	}

	amount := r.boost.Amount()

	result := r.db.WithContext(ctx).
		Model(&ContentModel{}).
		Where("id = ? AND content_type = ?", id, string(contentType)).
		Update(column, gorm.Expr(column+" + ?", amount))
	if result.Error != nil {
		return 0, fmt.Errorf("incrementing %s: %w", column, result.Error)
	}

	if result.RowsAffected == 0 {
		return 0, domain.ErrNotFound
	}

	return result.RowsAffected, nil
}

// CountByType returns the number of items stored for a content type.
func (r *Repository) CountByType(ctx context.Context, contentType domain.ContentType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ContentModel{}).
		Where("content_type = ?", string(contentType)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting contents: %w", err)
	}

	return count, nil
}

// Upsert creates or updates a single item. Ingestion is owned by an
// external process; this exists for seeding and operational tooling.
func (r *Repository) Upsert(ctx context.Context, item *domain.ContentItem) error {
	model := FromDomain(item)

	err := r.db.WithContext(ctx).Save(model).Error
	if err != nil {
		return fmt.Errorf("upserting content: %w", err)
	}

	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt

	return nil
}

// orderClause maps the scan direction onto a total, stable order.
// Ties on the ordering key always break by id ascending so pagination
// is deterministic.
func orderClause(order domain.Order) string {
	if order == domain.OrderAsc {
		return "created_at ASC, id ASC"
	}

	return "created_at DESC, id ASC"
}

// counterColumn whitelists the mutable counter columns. The column name
// is interpolated into the delta expression, so it must never come from
// caller input.
func counterColumn(field domain.CounterField) (string, error) {
	switch field {
	case domain.CounterClicks:
		return "clicks", nil
	case domain.CounterLikes:
		return "likes", nil
	default:
		return "", fmt.Errorf("unknown counter field %q", field)
	}
}

// escapeLike escapes LIKE/ILIKE metacharacters in user input.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}
