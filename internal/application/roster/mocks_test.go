package roster

import (
	"context"
	"io"
	"log/slog"
	"time"

	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/user"
	"rosterd/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTemplateRepository struct {
	CreateFunc  func(ctx context.Context, template *roster.ShiftTemplate) error
	GetByIDFunc func(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error)
	ListFunc    func(ctx context.Context, orgID uint) ([]*roster.ShiftTemplate, error)
	UpdateFunc  func(ctx context.Context, template *roster.ShiftTemplate) error
}

func (m *mockTemplateRepository) Create(ctx context.Context, template *roster.ShiftTemplate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	template.ID = 1
	return nil
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) List(ctx context.Context, orgID uint) ([]*roster.ShiftTemplate, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) Update(ctx context.Context, template *roster.ShiftTemplate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, template)
	}
	return nil
}

type mockShiftRepository struct {
	GetContextFunc func(ctx context.Context, scheduledShiftID uint, orgID uint) (*roster.ShiftContext, error)
	CreateFunc     func(ctx context.Context, shift *roster.ScheduledShift) error
	ListFunc       func(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*roster.ScheduledShift, error)
	DeleteFunc     func(ctx context.Context, id uint, orgID uint) (bool, error)
}

func (m *mockShiftRepository) GetContext(ctx context.Context, scheduledShiftID uint, orgID uint) (*roster.ShiftContext, error) {
	if m.GetContextFunc != nil {
		return m.GetContextFunc(ctx, scheduledShiftID, orgID)
	}
	return nil, nil
}

func (m *mockShiftRepository) Create(ctx context.Context, shift *roster.ScheduledShift) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, shift)
	}
	shift.ID = 1
	return nil
}

func (m *mockShiftRepository) List(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*roster.ScheduledShift, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID, start, end, limit, offset)
	}
	return nil, nil
}

func (m *mockShiftRepository) Delete(ctx context.Context, id uint, orgID uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, orgID)
	}
	return false, nil
}

type mockAssignmentRepository struct {
	CreateFunc               func(ctx context.Context, assignment *roster.Assignment) error
	FindOrCreateOvertimeFunc func(ctx context.Context, scheduledShiftID, userID, createdBy uint) (*roster.Assignment, error)
	ListByShiftFunc          func(ctx context.Context, scheduledShiftID uint) ([]*roster.Assignment, error)
	ListByDateRangeFunc      func(ctx context.Context, orgID uint, start, end time.Time) ([]*roster.Assignment, error)
	DeleteFunc               func(ctx context.Context, id uint, orgID uint) (bool, error)
}

func (m *mockAssignmentRepository) Create(ctx context.Context, assignment *roster.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, assignment)
	}
	assignment.ID = 1
	return nil
}

func (m *mockAssignmentRepository) FindOrCreateOvertime(ctx context.Context, scheduledShiftID, userID, createdBy uint) (*roster.Assignment, error) {
	if m.FindOrCreateOvertimeFunc != nil {
		return m.FindOrCreateOvertimeFunc(ctx, scheduledShiftID, userID, createdBy)
	}
	return &roster.Assignment{ID: 1, ScheduledShiftID: scheduledShiftID, UserID: userID, IsOvertime: true, CreatedBy: createdBy}, nil
}

func (m *mockAssignmentRepository) ListByShift(ctx context.Context, scheduledShiftID uint) ([]*roster.Assignment, error) {
	if m.ListByShiftFunc != nil {
		return m.ListByShiftFunc(ctx, scheduledShiftID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByDateRange(ctx context.Context, orgID uint, start, end time.Time) ([]*roster.Assignment, error) {
	if m.ListByDateRangeFunc != nil {
		return m.ListByDateRangeFunc(ctx, orgID, start, end)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Delete(ctx context.Context, id uint, orgID uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, orgID)
	}
	return false, nil
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
