package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrExpired = errors.New("session expired")

// Session carries the backend bearer token together with an explicit expiry.
// It is handed to the API client at construction instead of being looked up
// from ambient storage on every request.
type Session struct {
	Token     string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// FromToken builds a session from a backend-issued JWT. The token signature
// belongs to the backend and is not verifiable here; only the registered
// claims are read to learn the expiry.
func FromToken(token string) (*Session, error) {
	sess := &Session{Token: token}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	_, _, err := parser.ParseUnverified(token, claims)
	if err != nil {
		return nil, err
	}

	if exp, ok := claims["exp"].(float64); ok {
		sess.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if username, ok := claims["username"].(string); ok {
		sess.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		sess.Role = role
	}

	return sess, nil
}

// Valid reports whether the session can still authenticate requests. A zero
// expiry means the backend token carried no exp claim and is taken at face
// value.
func (s *Session) Valid() bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// Store holds live sessions in memory, keyed by an opaque id. Lifetime
// mirrors the process, nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Put(sess *Session) string {
	id := uuid.NewString()

	st.mu.Lock()
	st.sessions[id] = sess
	st.mu.Unlock()

	return id
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, errors.New("no such session")
	}
	if !sess.Valid() {
		st.Delete(id)
		return nil, ErrExpired
	}
	return sess, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
