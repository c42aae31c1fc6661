package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"content-service/internal/domain"
)

// DigestService builds a digest of the hottest items per content type
// and delivers it through the configured notifier.
type DigestService struct {
	repo     domain.ContentRepository
	notifier domain.Notifier
	topN     int
	logger   *zap.Logger
}

// NewDigestService creates a new DigestService.
func NewDigestService(repo domain.ContentRepository, notifier domain.Notifier, topN int, logger *zap.Logger) *DigestService {
	return &DigestService{
		repo:     repo,
		notifier: notifier,
		topN:     domain.ClampLimit(topN),
		logger:   logger,
	}
}

// DigestResult holds the outcome of one digest run.
type DigestResult struct {
	Items    int
	Duration time.Duration
	Error    error
}

// SendDigest collects the top-clicked items for every content type and
// mails them as one message. Content types with no items are skipped;
// a fully empty store skips delivery entirely.
func (s *DigestService) SendDigest(ctx context.Context) DigestResult {
	start := time.Now()
	result := DigestResult{}

	var b strings.Builder
	for _, contentType := range domain.ContentTypes() {
		items, err := s.repo.HotSearch(ctx, contentType, s.topN)
		if err != nil {
			result.Error = err
			result.Duration = time.Since(start)
			s.logger.Error("digest collection failed",
				zap.String("type", string(contentType)),
				zap.Error(err),
			)
			return result
		}
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "Top %s content:\n", contentType)
		for i, item := range items {
			fmt.Fprintf(&b, "%2d. %s (clicks: %d, likes: %d)\n", i+1, item.Title, item.Clicks, item.Likes)
		}
		b.WriteString("\n")
		result.Items += len(items)
	}

	if result.Items == 0 {
		result.Duration = time.Since(start)
		s.logger.Info("digest skipped, no content")
		return result
	}

	subject := fmt.Sprintf("Hot content digest - %s", time.Now().UTC().Format("2006-01-02"))
	if err := s.notifier.Send(ctx, subject, b.String()); err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	s.logger.Info("digest sent",
		zap.Int("items", result.Items),
		zap.Duration("duration", result.Duration),
	)

	return result
}
