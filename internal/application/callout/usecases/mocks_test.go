package usecases

import (
	"context"
	"time"

	"rosterd/internal/domain/callout"
	"rosterd/internal/domain/organization"
	"rosterd/internal/domain/overtime"
	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/user"
)

// mockTxManager runs the function directly; rollback behavior is
// exercised by the real TransactionManager's integration tests.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEventRepository struct {
	CreateFunc           func(ctx context.Context, event *callout.Event) error
	GetByIDFunc          func(ctx context.Context, id uint, orgID uint) (*callout.Event, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint, orgID uint) (*callout.Event, error)
	UpdateStatusFunc     func(ctx context.Context, event *callout.Event) error
	ListFunc             func(ctx context.Context, orgID uint, limit, offset int) ([]*callout.Event, error)
}

func (m *mockEventRepository) Create(ctx context.Context, event *callout.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id uint, orgID uint) (*callout.Event, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockEventRepository) GetByIDForUpdate(ctx context.Context, id uint, orgID uint) (*callout.Event, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockEventRepository) UpdateStatus(ctx context.Context, event *callout.Event) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) List(ctx context.Context, orgID uint, limit, offset int) ([]*callout.Event, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, orgID, limit, offset)
	}
	return nil, nil
}

type mockAttemptRepository struct {
	CreateFunc       func(ctx context.Context, attempt *callout.Attempt) error
	CountByEventFunc func(ctx context.Context, eventID uint) (int, error)
	ListByEventFunc  func(ctx context.Context, eventID uint) ([]*callout.Attempt, error)
}

func (m *mockAttemptRepository) Create(ctx context.Context, attempt *callout.Attempt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, attempt)
	}
	return attempt.SetID(1)
}

func (m *mockAttemptRepository) CountByEvent(ctx context.Context, eventID uint) (int, error) {
	if m.CountByEventFunc != nil {
		return m.CountByEventFunc(ctx, eventID)
	}
	return 0, nil
}

func (m *mockAttemptRepository) ListByEvent(ctx context.Context, eventID uint) ([]*callout.Attempt, error) {
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(ctx, eventID)
	}
	return nil, nil
}

type mockCandidateReader struct {
	ListCandidatesFunc func(ctx context.Context, orgID uint, scheduledShiftID uint, shiftDate time.Time, classificationID *uint) ([]callout.Candidate, error)
}

func (m *mockCandidateReader) ListCandidates(ctx context.Context, orgID uint, scheduledShiftID uint, shiftDate time.Time, classificationID *uint) ([]callout.Candidate, error) {
	if m.ListCandidatesFunc != nil {
		return m.ListCandidatesFunc(ctx, orgID, scheduledShiftID, shiftDate, classificationID)
	}
	return nil, nil
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

type mockLedgerRepository struct {
	AccumulateWorkedFunc   func(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error
	AccumulateDeclinedFunc func(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error
	GeneralHoursWorkedFunc func(ctx context.Context, userID uint, fiscalYear int) (float64, error)
	GetEntryFunc           func(ctx context.Context, userID uint, fiscalYear int, classificationID *uint) (*overtime.Entry, error)
}

func (m *mockLedgerRepository) AccumulateWorked(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error {
	if m.AccumulateWorkedFunc != nil {
		return m.AccumulateWorkedFunc(ctx, userID, fiscalYear, classificationID, delta)
	}
	return nil
}

func (m *mockLedgerRepository) AccumulateDeclined(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error {
	if m.AccumulateDeclinedFunc != nil {
		return m.AccumulateDeclinedFunc(ctx, userID, fiscalYear, classificationID, delta)
	}
	return nil
}

func (m *mockLedgerRepository) GeneralHoursWorked(ctx context.Context, userID uint, fiscalYear int) (float64, error) {
	if m.GeneralHoursWorkedFunc != nil {
		return m.GeneralHoursWorkedFunc(ctx, userID, fiscalYear)
	}
	return 0, nil
}

func (m *mockLedgerRepository) GetEntry(ctx context.Context, userID uint, fiscalYear int, classificationID *uint) (*overtime.Entry, error) {
	if m.GetEntryFunc != nil {
		return m.GetEntryFunc(ctx, userID, fiscalYear, classificationID)
	}
	return nil, nil
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

type mockOrganizationRepository struct {
	GetByIDFunc              func(ctx context.Context, id uint) (*organization.Organization, error)
	UpdateFunc               func(ctx context.Context, org *organization.Organization) error
	ListClassificationsFunc  func(ctx context.Context, orgID uint) ([]*organization.Classification, error)
	GetClassificationFunc    func(ctx context.Context, id uint, orgID uint) (*organization.Classification, error)
	CreateClassificationFunc func(ctx context.Context, c *organization.Classification) error
	UpdateClassificationFunc func(ctx context.Context, c *organization.Classification) error
	ListTeamsFunc            func(ctx context.Context, orgID uint) ([]*organization.Team, error)
	ListOTReasonsFunc        func(ctx context.Context, orgID uint) ([]*organization.OTReason, error)
	GetOTReasonFunc          func(ctx context.Context, id uint, orgID uint) (*organization.OTReason, error)
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) ListClassifications(ctx context.Context, orgID uint) ([]*organization.Classification, error) {
	if m.ListClassificationsFunc != nil {
		return m.ListClassificationsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetClassification(ctx context.Context, id uint, orgID uint) (*organization.Classification, error) {
	if m.GetClassificationFunc != nil {
		return m.GetClassificationFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) CreateClassification(ctx context.Context, c *organization.Classification) error {
	if m.CreateClassificationFunc != nil {
		return m.CreateClassificationFunc(ctx, c)
	}
	return nil
}

func (m *mockOrganizationRepository) UpdateClassification(ctx context.Context, c *organization.Classification) error {
	if m.UpdateClassificationFunc != nil {
		return m.UpdateClassificationFunc(ctx, c)
	}
	return nil
}

func (m *mockOrganizationRepository) ListTeams(ctx context.Context, orgID uint) ([]*organization.Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) ListOTReasons(ctx context.Context, orgID uint) ([]*organization.OTReason, error) {
	if m.ListOTReasonsFunc != nil {
		return m.ListOTReasonsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetOTReason(ctx context.Context, id uint, orgID uint) (*organization.OTReason, error) {
	if m.GetOTReasonFunc != nil {
		return m.GetOTReasonFunc(ctx, id, orgID)
	}
	return nil, nil
}

