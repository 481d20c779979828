package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/user"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/optional"
)

func TestDeriveDuration(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		wantMinutes int
		wantCrosses bool
		wantErr     bool
	}{
		{name: "day shift", start: "08:00", end: "16:00", wantMinutes: 480},
		{name: "twelve hour", start: "06:00", end: "18:00", wantMinutes: 720},
		{name: "night shift crosses midnight", start: "22:00", end: "06:00", wantMinutes: 480, wantCrosses: true},
		{name: "equal times is a full day", start: "08:00", end: "08:00", wantMinutes: 1440, wantCrosses: true},
		{name: "minute precision", start: "07:30", end: "15:45", wantMinutes: 495},
		{name: "bad start", start: "8am", end: "16:00", wantErr: true},
		{name: "bad end", start: "08:00", end: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, crosses, err := deriveDuration(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, tt.wantCrosses, crosses)
		})
	}
}

func TestService_CreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives duration from clock times", func(t *testing.T) {
		svc := NewService(&mockTemplateRepository{}, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		template, err := svc.CreateTemplate(ctx, CreateTemplateCommand{
			OrgID:     1,
			Name:      "Night Watch",
			StartTime: "19:00",
			EndTime:   "07:00",
		})
		require.NoError(t, err)
		assert.Equal(t, 720, template.DurationMinutes)
		assert.True(t, template.CrossesMidnight)
		assert.True(t, template.IsActive)
		assert.InDelta(t, 12.0, template.DurationHours(), 0.001)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		svc := NewService(&mockTemplateRepository{}, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		_, err := svc.CreateTemplate(ctx, CreateTemplateCommand{OrgID: 1, StartTime: "08:00", EndTime: "16:00"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestService_UpdateTemplate(t *testing.T) {
	ctx := context.Background()

	stored := func() *roster.ShiftTemplate {
		return &roster.ShiftTemplate{
			ID:              5,
			OrgID:           1,
			Name:            "Day",
			StartTime:       "08:00",
			EndTime:         "16:00",
			DurationMinutes: 480,
			IsActive:        true,
		}
	}

	t.Run("changing the end time re-derives the duration", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByIDFunc: func(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error) {
				return stored(), nil
			},
		}
		svc := NewService(repo, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		template, err := svc.UpdateTemplate(ctx, 5, 1, UpdateTemplateCommand{
			EndTime: optional.NewSet("20:00"),
		})
		require.NoError(t, err)
		assert.Equal(t, 720, template.DurationMinutes)
		assert.False(t, template.CrossesMidnight)
	})

	t.Run("renaming alone leaves the duration as stored", func(t *testing.T) {
		repo := &mockTemplateRepository{
			GetByIDFunc: func(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error) {
				return stored(), nil
			},
		}
		svc := NewService(repo, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		template, err := svc.UpdateTemplate(ctx, 5, 1, UpdateTemplateCommand{
			Name: optional.NewSet("Day A"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Day A", template.Name)
		assert.Equal(t, 480, template.DurationMinutes)
	})

	t.Run("missing template is not found", func(t *testing.T) {
		svc := NewService(&mockTemplateRepository{}, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		_, err := svc.UpdateTemplate(ctx, 99, 1, UpdateTemplateCommand{})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestService_CreateShift(t *testing.T) {
	ctx := context.Background()

	t.Run("pins the date to UTC midnight and defaults headcount", func(t *testing.T) {
		templateRepo := &mockTemplateRepository{
			GetByIDFunc: func(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error) {
				return &roster.ShiftTemplate{ID: id, OrgID: orgID, Name: "Day", IsActive: true, DurationMinutes: 480}, nil
			},
		}
		var created *roster.ScheduledShift
		shiftRepo := &mockShiftRepository{
			CreateFunc: func(ctx context.Context, shift *roster.ScheduledShift) error {
				created = shift
				shift.ID = 7
				return nil
			},
		}
		svc := NewService(templateRepo, shiftRepo, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		shift, err := svc.CreateShift(ctx, CreateShiftCommand{
			OrgID:           1,
			ShiftTemplateID: 5,
			Date:            time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), shift.ID)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), created.Date)
		assert.Equal(t, 1, created.RequiredHeadcount)
	})

	t.Run("inactive template is rejected", func(t *testing.T) {
		templateRepo := &mockTemplateRepository{
			GetByIDFunc: func(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error) {
				return &roster.ShiftTemplate{ID: id, OrgID: orgID, IsActive: false}, nil
			},
		}
		svc := NewService(templateRepo, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		_, err := svc.CreateShift(ctx, CreateShiftCommand{OrgID: 1, ShiftTemplateID: 5, Date: time.Now()})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("cross-org template is not found", func(t *testing.T) {
		svc := NewService(&mockTemplateRepository{}, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		_, err := svc.CreateShift(ctx, CreateShiftCommand{OrgID: 2, ShiftTemplateID: 5, Date: time.Now()})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestService_Schedule(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("groups assignments under their shifts", func(t *testing.T) {
		shiftRepo := &mockShiftRepository{
			ListFunc: func(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*roster.ScheduledShift, error) {
				return []*roster.ScheduledShift{
					{ID: 20, OrgID: orgID, Date: day},
					{ID: 21, OrgID: orgID, Date: day},
				}, nil
			},
		}
		assignmentRepo := &mockAssignmentRepository{
			ListByDateRangeFunc: func(ctx context.Context, orgID uint, start, end time.Time) ([]*roster.Assignment, error) {
				return []*roster.Assignment{
					{ID: 1, ScheduledShiftID: 20, UserID: 30},
					{ID: 2, ScheduledShiftID: 20, UserID: 31},
					{ID: 3, ScheduledShiftID: 21, UserID: 32},
				}, nil
			},
		}
		svc := NewService(&mockTemplateRepository{}, shiftRepo, assignmentRepo, &mockUserRepository{}, testLogger())

		staffing, err := svc.Schedule(ctx, 1, day, day.AddDate(0, 0, 6), 100, 0)
		require.NoError(t, err)
		require.Len(t, staffing, 2)
		assert.Len(t, staffing[0].Assignments, 2)
		assert.Len(t, staffing[1].Assignments, 1)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		svc := NewService(&mockTemplateRepository{}, &mockShiftRepository{}, &mockAssignmentRepository{}, &mockUserRepository{}, testLogger())

		_, err := svc.Schedule(ctx, 1, day, day.AddDate(0, 0, -1), 100, 0)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestService_CreateAssignment(t *testing.T) {
	ctx := context.Background()

	activeShift := func(ctx context.Context, id uint, orgID uint) (*roster.ShiftContext, error) {
		if orgID != 1 {
			return nil, nil
		}
		return &roster.ShiftContext{
			ScheduledShift: roster.ScheduledShift{ID: id, OrgID: orgID},
			DurationMinutes: 480,
		}, nil
	}
	activeEmployee := func(ctx context.Context, id uint, orgID uint) (*user.User, error) {
		if id == 30 && orgID == 1 {
			return &user.User{ID: 30, OrgID: 1, IsActive: true}, nil
		}
		return nil, nil
	}

	t.Run("creates a regular assignment", func(t *testing.T) {
		svc := NewService(
			&mockTemplateRepository{},
			&mockShiftRepository{GetContextFunc: activeShift},
			&mockAssignmentRepository{},
			&mockUserRepository{GetActiveByIDFunc: activeEmployee},
			testLogger(),
		)

		a, err := svc.CreateAssignment(ctx, CreateAssignmentCommand{
			OrgID:            1,
			ScheduledShiftID: 20,
			UserID:           30,
			CreatedBy:        40,
		})
		require.NoError(t, err)
		assert.False(t, a.IsOvertime)
		assert.Equal(t, uint(40), a.CreatedBy)
	})

	t.Run("cross-org shift is not found", func(t *testing.T) {
		svc := NewService(
			&mockTemplateRepository{},
			&mockShiftRepository{GetContextFunc: activeShift},
			&mockAssignmentRepository{},
			&mockUserRepository{GetActiveByIDFunc: activeEmployee},
			testLogger(),
		)

		_, err := svc.CreateAssignment(ctx, CreateAssignmentCommand{OrgID: 2, ScheduledShiftID: 20, UserID: 30})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("inactive user is not found", func(t *testing.T) {
		svc := NewService(
			&mockTemplateRepository{},
			&mockShiftRepository{GetContextFunc: activeShift},
			&mockAssignmentRepository{},
			&mockUserRepository{},
			testLogger(),
		)

		_, err := svc.CreateAssignment(ctx, CreateAssignmentCommand{OrgID: 1, ScheduledShiftID: 20, UserID: 31})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("duplicate pair surfaces the repository conflict", func(t *testing.T) {
		assignmentRepo := &mockAssignmentRepository{
			CreateFunc: func(ctx context.Context, assignment *roster.Assignment) error {
				return errors.NewConflictError("user is already assigned to this shift")
			},
		}
		svc := NewService(
			&mockTemplateRepository{},
			&mockShiftRepository{GetContextFunc: activeShift},
			assignmentRepo,
			&mockUserRepository{GetActiveByIDFunc: activeEmployee},
			testLogger(),
		)

		_, err := svc.CreateAssignment(ctx, CreateAssignmentCommand{OrgID: 1, ScheduledShiftID: 20, UserID: 30})
		assert.True(t, errors.IsConflictError(err))
	})
}
