package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rosterd/internal/domain/callout"
	"rosterd/internal/domain/roster"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/biztime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.OrganizationModel{},
		&models.ClassificationModel{},
		&models.TeamModel{},
		&models.UserModel{},
		&models.ShiftTemplateModel{},
		&models.ScheduledShiftModel{},
		&models.AssignmentModel{},
		&models.LeaveTypeModel{},
		&models.LeaveRequestModel{},
		&models.OTReasonModel{},
		&models.CalloutEventModel{},
		&models.CalloutAttemptModel{},
		&models.OTHoursModel{},
	)
	require.NoError(t, err)

	return db
}

func seedOrg(t *testing.T, db *gorm.DB, name string) uint {
	org := &models.OrganizationModel{Name: name, Timezone: "UTC"}
	require.NoError(t, db.Create(org).Error)
	return org.ID
}

func seedUser(t *testing.T, db *gorm.DB, orgID uint, email string, seniority *time.Time) uint {
	u := &models.UserModel{
		OrgID:         orgID,
		FirstName:     "Test",
		LastName:      "User",
		Email:         email,
		PasswordHash:  "x",
		Role:          "employee",
		EmployeeType:  "regular_full_time",
		SeniorityDate: seniority,
		IsActive:      true,
	}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func seedShift(t *testing.T, db *gorm.DB, orgID uint, date time.Time) uint {
	tmpl := &models.ShiftTemplateModel{
		OrgID:           orgID,
		Name:            "Day",
		StartTime:       "07:00",
		EndTime:         "19:00",
		DurationMinutes: 720,
		IsActive:        true,
	}
	require.NoError(t, db.Create(tmpl).Error)

	shift := &models.ScheduledShiftModel{
		OrgID:             orgID,
		ShiftTemplateID:   tmpl.ID,
		Date:              date,
		RequiredHeadcount: 1,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift.ID
}

func TestOTLedgerRepository_Accumulate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOTLedgerRepository(db)
	ctx := context.Background()
	orgID := seedOrg(t, db, "Org A")
	userID := seedUser(t, db, orgID, "ledger@example.com", nil)

	t.Run("missing row reads as zero", func(t *testing.T) {
		hours, err := repo.GeneralHoursWorked(ctx, userID, 2026)
		require.NoError(t, err)
		assert.Zero(t, hours)
	})

	t.Run("accumulation sums across calls", func(t *testing.T) {
		require.NoError(t, repo.AccumulateWorked(ctx, userID, 2026, nil, 12))
		require.NoError(t, repo.AccumulateWorked(ctx, userID, 2026, nil, 8.5))

		hours, err := repo.GeneralHoursWorked(ctx, userID, 2026)
		require.NoError(t, err)
		assert.InDelta(t, 20.5, hours, 1e-9)
	})

	t.Run("declined hours are a separate column", func(t *testing.T) {
		require.NoError(t, repo.AccumulateDeclined(ctx, userID, 2026, nil, 12))

		entry, err := repo.GetEntry(ctx, userID, 2026, nil)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.InDelta(t, 20.5, entry.HoursWorked, 1e-9)
		assert.InDelta(t, 12, entry.HoursDeclined, 1e-9)
	})

	t.Run("classification row is independent of the general row", func(t *testing.T) {
		classID := uint(3)
		require.NoError(t, repo.AccumulateWorked(ctx, userID, 2026, &classID, 4))

		general, err := repo.GeneralHoursWorked(ctx, userID, 2026)
		require.NoError(t, err)
		assert.InDelta(t, 20.5, general, 1e-9)

		entry, err := repo.GetEntry(ctx, userID, 2026, &classID)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.InDelta(t, 4, entry.HoursWorked, 1e-9)
	})

	t.Run("fiscal years never mix", func(t *testing.T) {
		require.NoError(t, repo.AccumulateWorked(ctx, userID, 2025, nil, 100))

		hours, err := repo.GeneralHoursWorked(ctx, userID, 2026)
		require.NoError(t, err)
		assert.InDelta(t, 20.5, hours, 1e-9)
	})
}

func TestCalloutEventRepository_StatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCalloutEventRepository(db)
	ctx := context.Background()

	orgID := seedOrg(t, db, "Org A")
	otherOrgID := seedOrg(t, db, "Org B")
	userID := seedUser(t, db, orgID, "super@example.com", nil)
	shiftID := seedShift(t, db, orgID, biztime.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))

	event, err := callout.NewEvent(shiftID, userID, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, event))
	require.NotZero(t, event.ID())

	t.Run("cross-org lookup behaves like a missing row", func(t *testing.T) {
		found, err := repo.GetByID(ctx, event.ID(), otherOrgID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("fill persists and is terminal", func(t *testing.T) {
		loaded, err := repo.GetByID(ctx, event.ID(), orgID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, callout.StatusOpen, loaded.Status())

		require.NoError(t, loaded.Fill())
		require.NoError(t, repo.UpdateStatus(ctx, loaded))

		reloaded, err := repo.GetByID(ctx, event.ID(), orgID)
		require.NoError(t, err)
		assert.Equal(t, callout.StatusFilled, reloaded.Status())
		assert.Error(t, reloaded.Cancel())
	})
}

func TestCalloutAttemptRepository_Positions(t *testing.T) {
	db := setupTestDB(t)
	eventRepo := NewCalloutEventRepository(db)
	attemptRepo := NewCalloutAttemptRepository(db)
	ctx := context.Background()

	orgID := seedOrg(t, db, "Org A")
	supervisorID := seedUser(t, db, orgID, "super@example.com", nil)
	employeeID := seedUser(t, db, orgID, "emp@example.com", nil)
	shiftID := seedShift(t, db, orgID, biztime.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))

	event, err := callout.NewEvent(shiftID, supervisorID, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, eventRepo.Create(ctx, event))

	count, err := attemptRepo.CountByEvent(ctx, event.ID())
	require.NoError(t, err)
	assert.Zero(t, count)

	first, err := callout.NewAttempt(event.ID(), employeeID, 1, callout.ResponseNoAnswer, 0, nil)
	require.NoError(t, err)
	require.NoError(t, attemptRepo.Create(ctx, first))

	second, err := callout.NewAttempt(event.ID(), employeeID, 2, callout.ResponseDeclined, 0, nil)
	require.NoError(t, err)
	require.NoError(t, attemptRepo.Create(ctx, second))

	count, err = attemptRepo.CountByEvent(ctx, event.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	t.Run("duplicate position is rejected by the database", func(t *testing.T) {
		dup, err := callout.NewAttempt(event.ID(), employeeID, 2, callout.ResponseAccepted, 0, nil)
		require.NoError(t, err)
		assert.Error(t, attemptRepo.Create(ctx, dup))
	})

	t.Run("attempts list in position order", func(t *testing.T) {
		attempts, err := attemptRepo.ListByEvent(ctx, event.ID())
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.Equal(t, 1, attempts[0].ListPosition())
		assert.Equal(t, 2, attempts[1].ListPosition())
	})
}

func TestAssignmentRepository_FindOrCreateOvertime(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	orgID := seedOrg(t, db, "Org A")
	supervisorID := seedUser(t, db, orgID, "super@example.com", nil)
	employeeID := seedUser(t, db, orgID, "emp@example.com", nil)
	shiftID := seedShift(t, db, orgID, biztime.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))

	created, err := repo.FindOrCreateOvertime(ctx, shiftID, employeeID, supervisorID)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.True(t, created.IsOvertime)

	again, err := repo.FindOrCreateOvertime(ctx, shiftID, employeeID, supervisorID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	assignments, err := repo.ListByShift(ctx, shiftID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestAssignmentRepository_ExistingRegularAssignmentWins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	orgID := seedOrg(t, db, "Org A")
	supervisorID := seedUser(t, db, orgID, "super@example.com", nil)
	employeeID := seedUser(t, db, orgID, "emp@example.com", nil)
	shiftID := seedShift(t, db, orgID, biztime.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))

	regular := &roster.Assignment{
		ScheduledShiftID: shiftID,
		UserID:           employeeID,
		CreatedBy:        supervisorID,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, regular))

	found, err := repo.FindOrCreateOvertime(ctx, shiftID, employeeID, supervisorID)
	require.NoError(t, err)
	assert.Equal(t, regular.ID, found.ID)
	assert.False(t, found.IsOvertime)
}

func TestCandidateReader_AvailabilityFacts(t *testing.T) {
	db := setupTestDB(t)
	reader := NewCandidateReader(db)
	ledger := NewOTLedgerRepository(db)
	assignments := NewAssignmentRepository(db)
	ctx := context.Background()

	shiftDate := biztime.Date(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	orgID := seedOrg(t, db, "Org A")
	otherOrgID := seedOrg(t, db, "Org B")
	supervisorID := seedUser(t, db, orgID, "super@example.com", nil)
	shiftID := seedShift(t, db, orgID, shiftDate)

	freeID := seedUser(t, db, orgID, "free@example.com", nil)
	busyID := seedUser(t, db, orgID, "busy@example.com", nil)
	elsewhereID := seedUser(t, db, orgID, "elsewhere@example.com", nil)
	onLeaveID := seedUser(t, db, orgID, "leave@example.com", nil)
	seedUser(t, db, otherOrgID, "outsider@example.com", nil)

	// busy is assigned to the target shift itself
	_, err := assignments.FindOrCreateOvertime(ctx, shiftID, busyID, supervisorID)
	require.NoError(t, err)

	// elsewhere works a different shift that date; only the target shift
	// makes a candidate "Already scheduled"
	otherShiftID := seedShift(t, db, orgID, shiftDate)
	_, err = assignments.FindOrCreateOvertime(ctx, otherShiftID, elsewhereID, supervisorID)
	require.NoError(t, err)

	// onLeave has an approved request covering the date
	lt := &models.LeaveTypeModel{OrgID: orgID, Code: "vac", Name: "Vacation", RequiresApproval: true, IsActive: true}
	require.NoError(t, db.Create(lt).Error)
	require.NoError(t, db.Create(&models.LeaveRequestModel{
		OrgID:       orgID,
		UserID:      onLeaveID,
		LeaveTypeID: lt.ID,
		StartDate:   shiftDate,
		EndDate:     shiftDate,
		Status:      "approved",
	}).Error)

	// free has some ledger hours in the shift's fiscal year
	require.NoError(t, ledger.AccumulateWorked(ctx, freeID, 2026, nil, 24))

	candidates, err := reader.ListCandidates(ctx, orgID, shiftID, shiftDate, nil)
	require.NoError(t, err)

	byID := make(map[uint]callout.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.UserID] = c
	}

	require.Contains(t, byID, freeID)
	require.Contains(t, byID, busyID)
	require.Contains(t, byID, elsewhereID)
	require.Contains(t, byID, onLeaveID)
	assert.Contains(t, byID, supervisorID)
	assert.Len(t, candidates, 5, "other orgs never leak into the roster")

	assert.True(t, byID[freeID].Available())
	assert.InDelta(t, 24, byID[freeID].OTHours, 1e-9)

	assert.False(t, byID[busyID].Available())
	assert.Equal(t, callout.ReasonAlreadyScheduled, byID[busyID].UnavailableReason())

	assert.True(t, byID[elsewhereID].Available(), "an assignment on another shift does not block this callout")

	assert.False(t, byID[onLeaveID].Available())
	assert.Equal(t, callout.ReasonOnApprovedLeave, byID[onLeaveID].UnavailableReason())
}
