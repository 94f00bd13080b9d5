package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestLocalCache_SetAndGet(t *testing.T) {
	c := NewLocalCache(time.Minute, newTestLogger())
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "report:abc", `{"period":"day"}`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := c.Get(ctx, "report:abc")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `{"period":"day"}` {
		t.Errorf("value = %q", got)
	}
}

func TestLocalCache_MissingKey(t *testing.T) {
	c := NewLocalCache(time.Minute, newTestLogger())
	defer c.Close()

	if _, err := c.Get(context.Background(), "nope"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestLocalCache_Expiration(t *testing.T) {
	c := NewLocalCache(time.Minute, newTestLogger())
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "short", "v", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, err := c.Get(ctx, "short"); err == nil {
		t.Error("expected expired key to miss")
	}
}

func TestLocalCache_NoExpiration(t *testing.T) {
	c := NewLocalCache(time.Minute, newTestLogger())
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "forever", "v", 0)
	time.Sleep(10 * time.Millisecond)

	if _, err := c.Get(ctx, "forever"); err != nil {
		t.Errorf("zero-expiration entry must persist: %v", err)
	}
}

func TestLocalCache_Delete(t *testing.T) {
	c := NewLocalCache(time.Minute, newTestLogger())
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "k", "v", time.Minute)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := c.Get(ctx, "k"); err == nil {
		t.Error("expected miss after delete")
	}
}
