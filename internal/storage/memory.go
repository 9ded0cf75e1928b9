package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used by tests. It mirrors the
// Firestore semantics, including ErrAlreadyExists on a googleId
// collision.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User // keyed by googleId
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[googleID]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Create(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.GoogleID]; ok {
		return ErrAlreadyExists
	}
	s.users[user.GoogleID] = *user
	return nil
}

// Count reports how many users are stored.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
