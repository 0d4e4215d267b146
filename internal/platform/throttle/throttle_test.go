package throttle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

func TestMemoryLimiterWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := newMemory(2, time.Minute, func() time.Time { return now })
	ctx := context.Background()

	for i, want := range []bool{true, true, false, false} {
		ok, err := m.Hit(ctx, "10.0.0.1")
		if err != nil || ok != want {
			t.Fatalf("hit %d: ok=%v err=%v want=%v", i, ok, err, want)
		}
	}
	if ok, _ := m.Hit(ctx, "10.0.0.2"); !ok {
		t.Fatal("keys are not independent")
	}

	now = now.Add(time.Minute)
	if ok, _ := m.Hit(ctx, "10.0.0.1"); !ok {
		t.Fatal("window did not expire")
	}
}

func TestMemoryLimiterReset(t *testing.T) {
	m := NewMemory(1, time.Hour)
	ctx := context.Background()
	_, _ = m.Hit(ctx, "k")
	if ok, _ := m.Hit(ctx, "k"); ok {
		t.Fatal("limit not applied")
	}
	if err := m.Reset(ctx, "k"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if ok, _ := m.Hit(ctx, "k"); !ok {
		t.Fatal("Reset did not clear the key")
	}
}

func TestMemoryLimiterConcurrent(t *testing.T) {
	m := NewMemory(50, time.Hour)
	ctx := context.Background()
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := m.Hit(ctx, "shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if allowed != 50 {
		t.Fatalf("allowed=%d want=50", allowed)
	}
}

func TestNewRedisValidatesArgs(t *testing.T) {
	if _, err := NewRedis(nil, "localhost:6379", 5, time.Minute); err == nil {
		t.Fatal("nil logger accepted")
	}
	if _, err := NewRedis(logger.Nop(), "  ", 5, time.Minute); err == nil {
		t.Fatal("empty address accepted")
	}
}
