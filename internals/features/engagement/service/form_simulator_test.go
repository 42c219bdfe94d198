package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestProcessReturnsULID(t *testing.T) {
	at := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	s := NewFormSimulator(0)
	s.Now = func() time.Time { return at }

	ref, err := s.Process(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := ulid.ParseStrict(ref)
	if err != nil {
		t.Fatalf("reference %q is not a ULID: %v", ref, err)
	}
	if got := ulid.Time(id.Time()); !got.Equal(at) {
		t.Fatalf("expected timestamp %v, got %v", at, got)
	}

	other, _ := s.Process(context.Background())
	if other == ref {
		t.Fatalf("expected distinct references")
	}
}

func TestProcessHonoursContext(t *testing.T) {
	s := NewFormSimulator(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Process(ctx)
	if !errors.Is(err, ErrFormUnavailable) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected unavailable + deadline, got %v", err)
	}
}
