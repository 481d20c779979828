// Package auth implements login and session introspection on top of the
// user repository and the JWT token service.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"rosterd/internal/domain/user"
	authInfra "rosterd/internal/infrastructure/auth"
	"rosterd/internal/shared/authorization"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenService issues and rotates token pairs.
type TokenService interface {
	Generate(userID, orgID uint, sessionID string, role authorization.UserRole) (*authInfra.TokenPair, error)
	Refresh(refreshToken string) (*authInfra.TokenPair, error)
}

type Service struct {
	userRepo user.Repository
	verifier PasswordVerifier
	tokens   TokenService
	logger   logger.Interface
}

func NewService(
	userRepo user.Repository,
	verifier PasswordVerifier,
	tokens TokenService,
	logger logger.Interface,
) *Service {
	return &Service{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// LoginResult carries the authenticated user together with their tokens.
type LoginResult struct {
	User   *user.User
	Tokens *authInfra.TokenPair
}

// Login authenticates by email and password. Unknown emails, inactive
// users, and wrong passwords all return the same unauthorized error so
// callers cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, errors.NewBadRequestError("email and password are required")
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if u == nil || !u.IsActive {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := s.verifier.Verify(password, u.PasswordHash); err != nil {
		s.logger.Warnw("login attempt with wrong password", "user_id", u.ID)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := s.tokens.Generate(u.ID, u.OrgID, uuid.NewString(), u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", u.ID, "org_id", u.OrgID)
	return &LoginResult{User: u, Tokens: pair}, nil
}

// Refresh rotates a refresh token into a fresh token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*authInfra.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.NewBadRequestError("refresh token is required")
	}

	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	return pair, nil
}

// Me returns the authenticated caller's user record.
func (s *Service) Me(ctx context.Context, userID, orgID uint) (*user.User, error) {
	u, err := s.userRepo.GetActiveByID(ctx, userID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("user no longer active")
	}
	return u, nil
}
