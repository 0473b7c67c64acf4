package service

import (
	"context"

	"studentoffice/domain"

	"github.com/rs/zerolog/log"
)

type authService struct {
	store domain.RecordStore
}

func NewAuthService(store domain.RecordStore) domain.AuthUseCase {
	return &authService{store: store}
}

// Login is the only transition from Anonymous to Authenticated. The role is
// fixed in the returned session and never re-derived. Query errors fail
// closed: the caller sees the same invalid-credentials result.
func (s *authService) Login(ctx context.Context, role domain.Role, id, secret string) (*domain.Session, error) {
	ok, err := s.store.Login(ctx, role, id, secret)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("login query failed, failing closed")
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	log.Info().Str("role", string(role)).Str("id", id).Msg("login successful")
	return &domain.Session{Role: role, ID: id}, nil
}
