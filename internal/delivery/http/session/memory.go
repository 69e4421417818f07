package session

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MemoryStore is an in-process Store used by handler tests. It holds a
// single session and records whether Clear was called.
type MemoryStore struct {
	Session *entity.Session
	Cleared bool
}

// NewMemoryStore creates a MemoryStore seeded with the given session.
func NewMemoryStore(sess *entity.Session) *MemoryStore {
	return &MemoryStore{Session: sess}
}

func (s *MemoryStore) Load(echo.Context) *entity.Session {
	if s.Session == nil || !s.Session.IsValid() {
		return nil
	}

	return s.Session
}

func (s *MemoryStore) Save(_ echo.Context, sess *entity.Session) {
	s.Session = sess
	s.Cleared = false
}

func (s *MemoryStore) Clear(echo.Context) {
	s.Session = nil
	s.Cleared = true
}
