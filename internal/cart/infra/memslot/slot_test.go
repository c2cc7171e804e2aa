package memslot

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestReadEmpty(t *testing.T) {
	s := New()
	data, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil payload, got %q", data)
	}
}

func TestWriteReadClear(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Write(ctx, []byte("[1,2,3]")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != "[1,2,3]" {
		t.Fatalf("payload mismatch: %q", got)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	got, err = s.Read(ctx)
	if err != nil {
		t.Fatalf("Read after Clear failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cleared slot, got %q", got)
	}
}

func TestReadReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Write(ctx, []byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	first, _ := s.Read(ctx)
	first[0] = 'x'

	second, _ := s.Read(ctx)
	if string(second) != "abc" {
		t.Fatalf("mutating a read payload must not affect the slot, got %q", second)
	}
}

func TestConcurrentWritersLastWriteWins(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 50
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return s.Write(ctx, []byte(fmt.Sprintf("[%d]", i)))
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent writes failed: %v", err)
	}

	// No partial payloads: whatever write landed last, it is intact.
	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) < 3 || got[0] != '[' || got[len(got)-1] != ']' {
		t.Fatalf("torn payload: %q", got)
	}
}
