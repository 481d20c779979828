package auth

import (
	"context"
	"io"
	"log/slog"

	"rosterd/internal/domain/user"
	authInfra "rosterd/internal/infrastructure/auth"
	"rosterd/internal/shared/authorization"
	"rosterd/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint, orgID uint) (*user.User, error)
	GetActiveByIDFunc func(ctx context.Context, id uint, orgID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ListFunc          func(ctx context.Context, orgID uint, activeOnly bool, limit, offset int) ([]*user.User, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeactivateFunc    func(ctx context.Context, id uint, orgID uint) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint, orgID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetActiveByID(ctx context.Context, id uint, orgID uint) (*user.User, error) {
	if m.GetActiveByIDFunc != nil {
		return m.GetActiveByIDFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, orgID uint, activeOnly bool, limit, offset int) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID, activeOnly, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Deactivate(ctx context.Context, id uint, orgID uint) (bool, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id, orgID)
	}
	return false, nil
}

type mockVerifier struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockVerifier) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID, orgID uint, sessionID string, role authorization.UserRole) (*authInfra.TokenPair, error)
	RefreshFunc  func(refreshToken string) (*authInfra.TokenPair, error)
}

func (m *mockTokenService) Generate(userID, orgID uint, sessionID string, role authorization.UserRole) (*authInfra.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, orgID, sessionID, role)
	}
	return &authInfra.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*authInfra.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &authInfra.TokenPair{AccessToken: "access2", RefreshToken: "refresh2", ExpiresIn: 900}, nil
}
