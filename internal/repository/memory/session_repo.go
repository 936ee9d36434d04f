package memory

import (
	"context"
	"sync"
)

type SessionRepo struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{tokens: make(map[string]string)}
}

func (r *SessionRepo) GetToken(_ context.Context, sessionID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tokens[sessionID], nil
}

func (r *SessionRepo) SetToken(_ context.Context, sessionID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[sessionID] = token

	return nil
}

func (r *SessionRepo) DeleteToken(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, sessionID)

	return nil
}
