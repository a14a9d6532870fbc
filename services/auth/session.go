// Package auth provides opaque bearer-token sessions and password hashing.
package auth

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SessionManager maps opaque tokens to user ids. Sessions live in memory and
// die with the process, matching the store's durability.
type SessionManager struct {
	mu     sync.RWMutex
	tokens map[string]int
}

func NewSessionManager() *SessionManager {
	return &SessionManager{tokens: make(map[string]int)}
}

// CreateSession issues a fresh token for the user.
func (m *SessionManager) CreateSession(userID int) string {
	token := uuid.NewString()

	m.mu.Lock()
	m.tokens[token] = userID
	m.mu.Unlock()

	return token
}

// DeleteSession invalidates a token. Unknown tokens are a no-op.
func (m *SessionManager) DeleteSession(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

// UserIDForToken resolves a token to its user id.
func (m *SessionManager) UserIDForToken(token string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.tokens[token]
	return userID, ok
}

// UserIDFromRequest resolves the Authorization bearer token of a request.
func (m *SessionManager) UserIDFromRequest(r *http.Request) (int, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return 0, false
	}
	return m.UserIDForToken(token)
}

// TokenFromRequest returns the raw bearer token, if any.
func TokenFromRequest(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
