package linkedin

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestSearchReturnsCatalog(t *testing.T) {
	searcher := NewSearcher(zap.NewNop(), 0)

	profiles, err := searcher.Search(context.Background(), "ML engineer in Mountain View")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profiles.Len() != 5 {
		t.Fatalf("expected 5 profiles, got %d", profiles.Len())
	}

	for _, profile := range profiles.Items {
		if profile.Name == "" || profile.URL == "" || profile.Company == "" {
			t.Fatalf("incomplete profile: %+v", profile)
		}
	}
}

func TestSearchCapsResults(t *testing.T) {
	searcher := NewSearcher(zap.NewNop(), 2)

	profiles, err := searcher.Search(context.Background(), "any job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profiles.Len() != 2 {
		t.Fatalf("expected 2 profiles, got %d", profiles.Len())
	}
}

func TestSearchHonorsContextCancellation(t *testing.T) {
	searcher := NewSearcher(zap.NewNop(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := searcher.Search(ctx, "any job"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
