// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"context"
	"fmt"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps payloads in a map keyed by skill id.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Handle]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Handle]string)}
}

// Put stores payload under id. Storing the same id twice fails with ErrExists.
func (s *MemoryStore) Put(_ context.Context, id, payload string) (Handle, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrInvalidHandle)
	}
	h := Handle(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[h]; ok {
		return "", fmt.Errorf("%w: %s", ErrExists, id)
	}
	s.entries[h] = payload
	return h, nil
}

// Get returns the payload stored under h.
func (s *MemoryStore) Get(_ context.Context, h Handle) (string, error) {
	s.mu.RLock()
	text, ok := s.entries[h]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, h)
	}
	return text, nil
}

// Len returns the number of stored payloads.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
