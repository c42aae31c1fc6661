package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-service/internal/domain"
)

// stubRepo is an in-memory ContentRepository for service tests.
type stubRepo struct {
	items map[domain.ContentKey]*domain.ContentItem
	err   error

	lastListParams domain.ListParams
	lastHotLimit   int
}

func newStubRepo(items ...*domain.ContentItem) *stubRepo {
	r := &stubRepo{items: make(map[domain.ContentKey]*domain.ContentItem)}
	for _, item := range items {
		r.items[item.Key()] = item
	}

	return r
}

func (r *stubRepo) byType(contentType domain.ContentType) []*domain.ContentItem {
	var out []*domain.ContentItem
	for _, item := range r.items {
		if item.Type == contentType {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (r *stubRepo) GetList(_ context.Context, contentType domain.ContentType, params domain.ListParams) ([]*domain.ContentItem, error) {
	r.lastListParams = params
	if r.err != nil {
		return nil, r.err
	}

	return r.byType(contentType), nil
}

func (r *stubRepo) GetDetail(_ context.Context, contentType domain.ContentType, id int64) (*domain.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	item, ok := r.items[domain.ContentKey{ID: id, Type: contentType}]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return item, nil
}

func (r *stubRepo) GetMore(_ context.Context, contentType domain.ContentType, id int64) ([]*domain.ContentItem, error) {
	var out []*domain.ContentItem
	for _, item := range r.byType(contentType) {
		if item.ID != id {
			out = append(out, item)
		}
	}

	return out, r.err
}

func (r *stubRepo) HotSearch(_ context.Context, contentType domain.ContentType, limit int) ([]*domain.ContentItem, error) {
	r.lastHotLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	items := r.byType(contentType)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Clicks != items[j].Clicks {
			return items[i].Clicks > items[j].Clicks
		}
		return items[i].ID < items[j].ID
	})
	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func (r *stubRepo) IsExist(_ context.Context, contentType domain.ContentType, id int64) (bool, error) {
	_, ok := r.items[domain.ContentKey{ID: id, Type: contentType}]

	return ok, r.err
}

func (r *stubRepo) Search(_ context.Context, contentType domain.ContentType, title string) ([]*domain.ContentItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	title = strings.TrimSpace(strings.ToLower(title))
	out := []*domain.ContentItem{}
	if title == "" {
		return out, nil
	}
	for _, item := range r.byType(contentType) {
		if strings.Contains(strings.ToLower(item.Title), title) {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *stubRepo) UpdateClicks(_ context.Context, contentType domain.ContentType, id int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	item, ok := r.items[domain.ContentKey{ID: id, Type: contentType}]
	if !ok {
		return 0, domain.ErrNotFound
	}
	item.Clicks += 5

	return 1, nil
}

func (r *stubRepo) UpdateLikes(_ context.Context, contentType domain.ContentType, id int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	item, ok := r.items[domain.ContentKey{ID: id, Type: contentType}]
	if !ok {
		return 0, domain.ErrNotFound
	}
	item.Likes += 5

	return 1, nil
}

func (r *stubRepo) CountByType(_ context.Context, contentType domain.ContentType) (int64, error) {
	return int64(len(r.byType(contentType))), r.err
}

// stubNotifier records sent messages.
type stubNotifier struct {
	subjects []string
	bodies   []string
	err      error
}

func (n *stubNotifier) Name() string { return "stub" }

func (n *stubNotifier) Send(_ context.Context, subject, body string) error {
	if n.err != nil {
		return n.err
	}
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)

	return nil
}

func (n *stubNotifier) HealthCheck(context.Context) error { return nil }

func TestContentService_GetList_NormalizesParams(t *testing.T) {
	repo := newStubRepo(domain.NewContentItem(1, domain.ContentTypeVideo, "a"))
	svc := NewContentService(repo, zap.NewNop())

	_, err := svc.GetList(context.Background(), domain.ContentTypeVideo, domain.ListParams{Limit: 500, Offset: -1})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.lastListParams.Limit)
	assert.Equal(t, 0, repo.lastListParams.Offset)
	assert.Equal(t, domain.OrderDesc, repo.lastListParams.Order)
}

func TestContentService_GetDetail_NotFoundPassthrough(t *testing.T) {
	svc := NewContentService(newStubRepo(), zap.NewNop())

	_, err := svc.GetDetail(context.Background(), domain.ContentTypeVideo, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentService_HotSearch_ClampsLimit(t *testing.T) {
	repo := newStubRepo(domain.NewContentItem(1, domain.ContentTypeVideo, "a"))
	svc := NewContentService(repo, zap.NewNop())

	_, err := svc.HotSearch(context.Background(), domain.ContentTypeVideo, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageSize, repo.lastHotLimit)

	_, err = svc.HotSearch(context.Background(), domain.ContentTypeVideo, 9999)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageSize, repo.lastHotLimit)
}

func TestContentService_UpdateClicks_ReturnsFreshDetail(t *testing.T) {
	item := domain.NewContentItem(3, domain.ContentTypeVideo, "a")
	repo := newStubRepo(item)
	svc := NewContentService(repo, zap.NewNop())

	fresh, affected, err := svc.UpdateClicks(context.Background(), domain.ContentTypeVideo, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, int64(5), fresh.Clicks)
}

func TestContentService_UpdateLikes_NotFound(t *testing.T) {
	svc := NewContentService(newStubRepo(), zap.NewNop())

	_, _, err := svc.UpdateLikes(context.Background(), domain.ContentTypeVideo, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentService_StorageFailurePropagates(t *testing.T) {
	repo := newStubRepo()
	repo.err = errors.New("connection refused")
	svc := NewContentService(repo, zap.NewNop())

	_, err := svc.Search(context.Background(), domain.ContentTypeVideo, "news")
	assert.ErrorContains(t, err, "connection refused")
}

func TestDigestService_SendDigest(t *testing.T) {
	hot := domain.NewContentItem(1, domain.ContentTypeVideo, "Evening News")
	hot.Clicks = 20
	cold := domain.NewContentItem(2, domain.ContentTypeVideo, "Nocturne")
	cold.Clicks = 1
	article := domain.NewContentItem(1, domain.ContentTypeArticle, "Launch Post")
	article.Clicks = 7

	repo := newStubRepo(hot, cold, article)
	notifier := &stubNotifier{}
	svc := NewDigestService(repo, notifier, 10, zap.NewNop())

	result := svc.SendDigest(context.Background())
	require.NoError(t, result.Error)
	assert.Equal(t, 3, result.Items)

	require.Len(t, notifier.bodies, 1)
	body := notifier.bodies[0]
	assert.Contains(t, body, "Evening News")
	assert.Contains(t, body, "Launch Post")
	assert.Less(t, strings.Index(body, "Evening News"), strings.Index(body, "Nocturne"),
		"hotter item should be listed first")
}

func TestDigestService_EmptyStoreSkipsDelivery(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewDigestService(newStubRepo(), notifier, 10, zap.NewNop())

	result := svc.SendDigest(context.Background())
	require.NoError(t, result.Error)
	assert.Zero(t, result.Items)
	assert.Empty(t, notifier.subjects)
}

func TestDigestService_NotifierFailureReported(t *testing.T) {
	item := domain.NewContentItem(1, domain.ContentTypeVideo, "a")
	notifier := &stubNotifier{err: errors.New("relay down")}
	svc := NewDigestService(newStubRepo(item), notifier, 10, zap.NewNop())

	result := svc.SendDigest(context.Background())
	assert.ErrorContains(t, result.Error, "relay down")
}
