package auth

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryRevocationSetAddContains(t *testing.T) {
	ctx := context.Background()
	set := NewMemoryRevocationSet()

	found, err := set.Contains(ctx, "missing")
	if err != nil || found {
		t.Fatalf("empty set Contains = (%v, %v)", found, err)
	}

	if err := set.Add(ctx, "digest-a", time.Minute); err != nil {
		t.Fatalf("Add: %v", err)
	}
	// Adding twice is a no-op, not an error.
	if err := set.Add(ctx, "digest-a", time.Minute); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	found, err = set.Contains(ctx, "digest-a")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !found {
		t.Fatal("added digest not found")
	}
}

func TestMemoryRevocationSetExpiry(t *testing.T) {
	ctx := context.Background()
	set := NewMemoryRevocationSet()

	if err := set.Add(ctx, "digest-b", -time.Second); err != nil {
		t.Fatalf("Add: %v", err)
	}
	found, err := set.Contains(ctx, "digest-b")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if found {
		t.Fatal("entry past its deadline should read as absent")
	}
}

func TestMemoryRevocationSetConcurrent(t *testing.T) {
	ctx := context.Background()
	set := NewMemoryRevocationSet()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = set.Add(ctx, "shared", time.Minute)
			_, _ = set.Contains(ctx, "shared")
		}()
	}
	wg.Wait()

	found, err := set.Contains(ctx, "shared")
	if err != nil || !found {
		t.Fatalf("Contains after concurrent adds = (%v, %v)", found, err)
	}
}
