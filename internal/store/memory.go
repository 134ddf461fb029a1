// internal/store/memory.go
//
// In-memory implementation of the session Store interface. Sessions
// are ephemeral; a mutex-guarded map is the whole persistence layer.

package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Session is anything the store can hold, keyed by its id. Both
// marathon sessions and practice rounds satisfy it.
type Session interface {
	SessionID() string
}

// Store defines the persistence interface for play sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s Session) error

	// Get retrieves a session by id, or ErrNotFound.
	Get(ctx context.Context, id string) (Session, error)

	// Delete removes a finished session. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
}

// memory is a map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]Session)}
}

func (m *memory) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID()] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
