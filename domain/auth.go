package domain

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the authenticated state of the running process. Nil means
// Anonymous. Role and ID are fixed at login time and never re-derived; the
// only way back to Anonymous is the shell discarding the session on logout.
type Session struct {
	Role Role
	ID   string
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

type AuthUseCase interface {
	// Login validates the (role, id, secret) triple against the store and
	// returns a Session only on an exact match. Fails closed on query errors.
	Login(ctx context.Context, role Role, id, secret string) (*Session, error)
}
