// Package memslot holds the persisted cart payload in memory. It backs tests
// and the interactive session, where the process itself is the page context.
package memslot

import (
	"context"
	"sync"
)

type Slot struct {
	mu   sync.Mutex
	data []byte
}

func New() *Slot {
	return &Slot{}
}

func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *Slot) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *Slot) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
