package service

import (
	"context"

	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/hasher"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/repository/contract"
)

// IAuthService answers whether a username/password pair is valid. It never
// returns an error: an absent user, a hash mismatch and a store failure all
// come back as "invalid" — the caller cannot tell them apart.
type IAuthService interface {
	Validate(ctx context.Context, username, password string) bool
	Authenticate(ctx context.Context, username, password string) (*entity.User, bool)
}

type authService struct {
	userRepository contract.UserRepository
	passwordHasher hasher.IPasswordHasher
	logger         logger.ILogger
}

func NewAuthService(
	userRepository contract.UserRepository,
	passwordHasher hasher.IPasswordHasher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		logger:         log,
	}
}

func (s *authService) Validate(ctx context.Context, username, password string) bool {
	_, ok := s.Authenticate(ctx, username, password)
	return ok
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*entity.User, bool) {
	user, err := s.userRepository.FindByName(ctx, username)
	if err != nil {
		s.logger.Error("AuthService", "User lookup failed", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, false
	}
	if user == nil {
		return nil, false
	}
	if !s.passwordHasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("AuthService", "Password mismatch", map[string]interface{}{"username": username})
		return nil, false
	}
	return user, true
}
