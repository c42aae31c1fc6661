package domain

import (
	"testing"
)

func TestNewContentItem(t *testing.T) {
	item := NewContentItem(42, ContentTypeVideo, "Evening News")

	if item.ID != 42 {
		t.Errorf("expected id 42, got %d", item.ID)
	}
	if item.Type != ContentTypeVideo {
		t.Errorf("expected type 'video', got %q", item.Type)
	}
	if item.Title != "Evening News" {
		t.Errorf("expected title 'Evening News', got %q", item.Title)
	}
	if item.Clicks != 0 || item.Likes != 0 {
		t.Errorf("expected zeroed counters, got clicks=%d likes=%d", item.Clicks, item.Likes)
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestContentType_Valid(t *testing.T) {
	for _, ct := range ContentTypes() {
		if !ct.Valid() {
			t.Errorf("expected %q to be valid", ct)
		}
	}

	for _, ct := range []ContentType{"", "news", "VIDEO"} {
		if ct.Valid() {
			t.Errorf("expected %q to be invalid", ct)
		}
	}
}

func TestContentItem_Key(t *testing.T) {
	item := NewContentItem(7, ContentTypeArticle, "t")
	key := item.Key()

	if key.ID != 7 || key.Type != ContentTypeArticle {
		t.Errorf("unexpected key %+v", key)
	}
}
