package user

import (
	"context"
	"io"
	"log/slog"

	"rosterd/internal/domain/user"
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
	u.ID = 1
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

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}
