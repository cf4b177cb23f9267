package redisad_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "elhamas/internal/adapters/redis"
	"elhamas/internal/domain"
)

func TestSessions_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	s := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	sid, err := s.Create(ctx, "admin-1", time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !mr.Exists("session:" + sid) {
		t.Fatalf("key not written")
	}
	if ttl := mr.TTL("session:" + sid); ttl != time.Hour {
		t.Fatalf("ttl = %v", ttl)
	}

	got, err := s.Lookup(ctx, sid)
	if err != nil || got != "admin-1" {
		t.Fatalf("lookup = %q, %v", got, err)
	}

	if err := s.Delete(ctx, sid); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Lookup(ctx, sid); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("after delete: %v", err)
	}
}

func TestSessions_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	s := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	sid, err := s.Create(ctx, "admin-1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := s.Lookup(ctx, sid); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expired session still valid: %v", err)
	}
}

func TestSessions_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	s := redisad.New(mr.Addr(), "", 0)
	mr.Close()

	if _, err := s.Lookup(context.Background(), "x"); err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected connection error, got %v", err)
	}
}
