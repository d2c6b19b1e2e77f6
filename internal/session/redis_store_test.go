package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"comment-threads/internal/domain"
)

var item = domain.ContentItem{Kind: domain.ContentKindReview, ID: "r-1"}

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+s.Addr(), ttl)
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, s
}

func TestNewRedisStore(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestNewRedisStore_BadURL(t *testing.T) {
	if _, err := NewRedisStore("not-a-url", time.Hour); err == nil {
		t.Error("expected error for invalid url")
	}
}

func TestLoad_UnknownSession(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	set, err := store.Load(context.Background(), "nobody", item)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %v", set.IDs())
	}
}

func TestToggleAndLoad(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	for _, id := range []int64{12, 4} {
		expanded, err := store.Toggle(ctx, "sess-1", item, id)
		if err != nil {
			t.Fatalf("Toggle(%d) failed: %v", id, err)
		}
		if !expanded {
			t.Errorf("Toggle(%d) = collapsed, want expanded", id)
		}
	}

	set, err := store.Load(ctx, "sess-1", item)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := set.IDs(); len(got) != 2 || got[0] != 4 || got[1] != 12 {
		t.Errorf("Load = %v, want [4 12]", got)
	}

	if ttl := s.TTL("expanded:sess-1:review:r-1"); ttl != time.Hour {
		t.Errorf("TTL = %v, want 1h", ttl)
	}

	// other sessions and items are isolated
	other, _ := store.Load(ctx, "sess-2", item)
	if len(other) != 0 {
		t.Errorf("sess-2 should be empty, got %v", other.IDs())
	}
	otherItem, _ := store.Load(ctx, "sess-1", domain.ContentItem{Kind: domain.ContentKindURL, ID: "r-1"})
	if len(otherItem) != 0 {
		t.Errorf("url item should be empty, got %v", otherItem.IDs())
	}
}

func TestToggle_CollapsesAndClears(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	_, _ = store.Toggle(ctx, "sess-1", item, 4)
	_, _ = store.Toggle(ctx, "sess-1", item, 12)

	expanded, err := store.Toggle(ctx, "sess-1", item, 4)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if expanded {
		t.Error("second Toggle(4) should collapse")
	}

	set, _ := store.Load(ctx, "sess-1", item)
	if got := set.IDs(); len(got) != 1 || got[0] != 12 {
		t.Errorf("Load = %v, want [12]", got)
	}

	if _, err := store.Toggle(ctx, "sess-1", item, 12); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if s.Exists("expanded:sess-1:review:r-1") {
		t.Error("collapsing the last boundary should remove the key")
	}
}

func TestToggle_ConcurrentBoundariesAllKept(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for id := int64(1); id <= n; id++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if _, err := store.Toggle(ctx, "sess-1", item, id); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Toggle failed: %v", err)
	}

	set, err := store.Load(ctx, "sess-1", item)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(set) != n {
		t.Errorf("Load returned %d ids, want %d: %v", len(set), n, set.IDs())
	}
}

func TestToggle_RedisDown(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	s.Close()

	if _, err := store.Toggle(context.Background(), "sess-1", item, 4); err == nil {
		t.Error("expected error when redis is unavailable")
	}
}

func TestLoad_SkipsCorruptMembers(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)

	if _, err := s.SAdd("expanded:sess-1:review:r-1", "7", "garbage"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	set, err := store.Load(context.Background(), "sess-1", item)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := set.IDs(); len(got) != 1 || got[0] != 7 {
		t.Errorf("Load = %v, want [7]", got)
	}
}

func TestLoad_RedisDown(t *testing.T) {
	store, s := setupTestRedis(t, time.Hour)
	s.Close()

	if _, err := store.Load(context.Background(), "sess-1", item); err == nil {
		t.Error("expected error when redis is unavailable")
	}
}
