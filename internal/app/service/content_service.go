// Package service provides application use cases.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"content-service/internal/domain"
)

// ContentService exposes the repository contract to the transport layer,
// adding parameter normalization and operational logging. One instance
// serves every content type.
type ContentService struct {
	repo   domain.ContentRepository
	logger *zap.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(repo domain.ContentRepository, logger *zap.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
	}
}

// GetList returns one page of items for a content type.
func (s *ContentService) GetList(ctx context.Context, contentType domain.ContentType, params domain.ListParams) ([]*domain.ContentItem, error) {
	params.Normalize()

	s.logger.Debug("listing contents",
		zap.String("type", string(contentType)),
		zap.Int("limit", params.Limit),
		zap.Int("offset", params.Offset),
		zap.String("order", string(params.Order)),
	)

	items, err := s.repo.GetList(ctx, contentType, params)
	if err != nil {
		s.logger.Error("list failed", zap.String("type", string(contentType)), zap.Error(err))
		return nil, err
	}

	return items, nil
}

// GetDetail retrieves a single item by compound key.
func (s *ContentService) GetDetail(ctx context.Context, contentType domain.ContentType, id int64) (*domain.ContentItem, error) {
	item, err := s.repo.GetDetail(ctx, contentType, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("get detail failed",
				zap.String("type", string(contentType)),
				zap.Int64("id", id),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return item, nil
}

// GetMore returns related items for an anchor id.
func (s *ContentService) GetMore(ctx context.Context, contentType domain.ContentType, id int64) ([]*domain.ContentItem, error) {
	items, err := s.repo.GetMore(ctx, contentType, id)
	if err != nil {
		s.logger.Error("get more failed",
			zap.String("type", string(contentType)),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return items, nil
}

// HotSearch returns the top items by clicks.
func (s *ContentService) HotSearch(ctx context.Context, contentType domain.ContentType, limit int) ([]*domain.ContentItem, error) {
	items, err := s.repo.HotSearch(ctx, contentType, domain.ClampLimit(limit))
	if err != nil {
		s.logger.Error("hot search failed", zap.String("type", string(contentType)), zap.Error(err))
		return nil, err
	}

	return items, nil
}

// IsExist reports whether the compound key exists.
func (s *ContentService) IsExist(ctx context.Context, contentType domain.ContentType, id int64) (bool, error) {
	exists, err := s.repo.IsExist(ctx, contentType, id)
	if err != nil {
		s.logger.Error("existence check failed",
			zap.String("type", string(contentType)),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return false, err
	}

	return exists, nil
}

// Search returns items whose title contains the query.
func (s *ContentService) Search(ctx context.Context, contentType domain.ContentType, title string) ([]*domain.ContentItem, error) {
	s.logger.Debug("searching contents",
		zap.String("type", string(contentType)),
		zap.String("title", title),
	)

	items, err := s.repo.Search(ctx, contentType, title)
	if err != nil {
		s.logger.Error("search failed", zap.String("type", string(contentType)), zap.Error(err))
		return nil, err
	}

	return items, nil
}

// UpdateClicks increments the clicks counter and returns the refreshed
// item together with the affected-row count.
func (s *ContentService) UpdateClicks(ctx context.Context, contentType domain.ContentType, id int64) (*domain.ContentItem, int64, error) {
	return s.updateCounter(ctx, contentType, id, s.repo.UpdateClicks)
}

// UpdateLikes increments the likes counter and returns the refreshed
// item together with the affected-row count.
func (s *ContentService) UpdateLikes(ctx context.Context, contentType domain.ContentType, id int64) (*domain.ContentItem, int64, error) {
	return s.updateCounter(ctx, contentType, id, s.repo.UpdateLikes)
}

func (s *ContentService) updateCounter(
	ctx context.Context,
	contentType domain.ContentType,
	id int64,
	increment func(context.Context, domain.ContentType, int64) (int64, error),
) (*domain.ContentItem, int64, error) {
	affected, err := increment(ctx, contentType, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("counter update failed",
				zap.String("type", string(contentType)),
				zap.Int64("id", id),
				zap.Error(err),
			)
		}
		return nil, 0, err
	}

	// Re-read so the caller sees the post-update value
	item, err := s.repo.GetDetail(ctx, contentType, id)
	if err != nil {
		return nil, affected, err
	}

	return item, affected, nil
}

// CountByType returns the number of stored items for a content type.
func (s *ContentService) CountByType(ctx context.Context, contentType domain.ContentType) (int64, error) {
	return s.repo.CountByType(ctx, contentType)
}
