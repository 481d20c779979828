package leave

import (
	"context"
	"io"
	"log/slog"

	"rosterd/internal/domain/leave"
	"rosterd/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockLeaveRepository struct {
	CreateFunc    func(ctx context.Context, request *leave.Request) error
	GetByIDFunc   func(ctx context.Context, id uint, orgID uint) (*leave.Request, error)
	ListFunc      func(ctx context.Context, orgID uint, userID *uint, limit, offset int) ([]*leave.Request, error)
	UpdateFunc    func(ctx context.Context, request *leave.Request) error
	ListTypesFunc func(ctx context.Context, orgID uint) ([]*leave.Type, error)
	GetTypeFunc   func(ctx context.Context, id uint, orgID uint) (*leave.Type, error)
}

func (m *mockLeaveRepository) Create(ctx context.Context, request *leave.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	request.ID = 1
	return nil
}

func (m *mockLeaveRepository) GetByID(ctx context.Context, id uint, orgID uint) (*leave.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockLeaveRepository) List(ctx context.Context, orgID uint, userID *uint, limit, offset int) ([]*leave.Request, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockLeaveRepository) Update(ctx context.Context, request *leave.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, request)
	}
	return nil
}

func (m *mockLeaveRepository) ListTypes(ctx context.Context, orgID uint) ([]*leave.Type, error) {
	if m.ListTypesFunc != nil {
		return m.ListTypesFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockLeaveRepository) GetType(ctx context.Context, id uint, orgID uint) (*leave.Type, error) {
	if m.GetTypeFunc != nil {
		return m.GetTypeFunc(ctx, id, orgID)
	}
	return nil, nil
}
