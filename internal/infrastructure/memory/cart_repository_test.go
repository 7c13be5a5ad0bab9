package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/id"
	"golang.org/x/sync/errgroup"
)

func TestFindOrCreateActiveByUserConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(id.NewUUIDGenerator())

	const n = 50
	ids := make(map[string]struct{})
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			c, err := repo.FindOrCreateActiveByUser(ctx, "u1")
			if err != nil {
				return err
			}
			mu.Lock()
			ids[c.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent find-or-create failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected a single cart id, got %d", len(ids))
	}
}

func TestFindActiveByUserIgnoresCompleted(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(id.NewUUIDGenerator())

	c, err := repo.FindOrCreateActiveByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("FindOrCreateActiveByUser failed: %v", err)
	}
	c.MarkCompleted()
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := repo.FindActiveByUser(ctx, "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("completed cart returned as active: %v", err)
	}

	// FindAnyByUser still sees it.
	if _, err := repo.FindAnyByUser(ctx, "u1"); err != nil {
		t.Fatalf("FindAnyByUser failed: %v", err)
	}
}

func TestSaveReturnsClones(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(id.NewUUIDGenerator())

	c, err := repo.FindOrCreateActiveByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("FindOrCreateActiveByUser failed: %v", err)
	}
	c.AddLine("p1", 1)
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.FindActiveByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("FindActiveByUser failed: %v", err)
	}
	got.AddLine("p2", 1)

	again, err := repo.FindActiveByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("FindActiveByUser failed: %v", err)
	}
	if len(again.Lines) != 1 {
		t.Fatalf("mutating a returned cart leaked into the store: %d lines", len(again.Lines))
	}
}
