// Package roster models the scheduling surface the callout engine works
// against: shift templates, scheduled shift occurrences, and assignments
// of employees to shifts.
package roster

import (
	"context"
	"time"
)

// ShiftTemplate defines what a shift looks like, not who works it.
type ShiftTemplate struct {
	ID              uint
	OrgID           uint
	Name            string
	StartTime       string // HH:MM, org-local
	EndTime         string
	CrossesMidnight bool
	DurationMinutes int
	Color           string
	IsActive        bool
	CreatedAt       time.Time
}

// DurationHours converts the template duration to fractional hours for
// ledger accumulation.
func (t *ShiftTemplate) DurationHours() float64 {
	return float64(t.DurationMinutes) / 60.0
}

// ScheduledShift is a shift occurrence on a specific date.
type ScheduledShift struct {
	ID                uint
	OrgID             uint
	ShiftTemplateID   uint
	Date              time.Time // date-only, UTC midnight
	RequiredHeadcount int
	SlotID            *uint
	Notes             *string
	CreatedAt         time.Time
}

// ShiftContext is the joined view the callout engine needs: the shift
// plus the template duration it inherits.
type ShiftContext struct {
	ScheduledShift
	TemplateName    string
	DurationMinutes int
}

// DurationHours converts the shift duration to fractional hours.
func (s *ShiftContext) DurationHours() float64 {
	return float64(s.DurationMinutes) / 60.0
}

// Assignment links a user to a scheduled shift. IsOvertime marks
// assignments created by callout acceptance.
type Assignment struct {
	ID               uint
	ScheduledShiftID uint
	UserID           uint
	Position         *string
	IsOvertime       bool
	IsTrade          bool
	Notes            *string
	CreatedBy        uint
	CreatedAt        time.Time
}

// ShiftRepository resolves scheduled shifts, org-scoped.
type ShiftRepository interface {
	// GetContext returns the shift with its template duration, or nil
	// when absent from the org.
	GetContext(ctx context.Context, scheduledShiftID uint, orgID uint) (*ShiftContext, error)
	Create(ctx context.Context, shift *ScheduledShift) error
	List(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*ScheduledShift, error)
	Delete(ctx context.Context, id uint, orgID uint) (bool, error)
}

// TemplateRepository manages shift templates, org-scoped.
type TemplateRepository interface {
	Create(ctx context.Context, template *ShiftTemplate) error
	GetByID(ctx context.Context, id uint, orgID uint) (*ShiftTemplate, error)
	List(ctx context.Context, orgID uint) ([]*ShiftTemplate, error)
	Update(ctx context.Context, template *ShiftTemplate) error
}

// AssignmentRepository manages shift assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	// FindOrCreateOvertime ensures an overtime assignment exists for
	// (shift, user). An existing assignment for the pair, overtime or
	// not, is accepted as-is; the call is idempotent.
	FindOrCreateOvertime(ctx context.Context, scheduledShiftID, userID, createdBy uint) (*Assignment, error)
	ListByShift(ctx context.Context, scheduledShiftID uint) ([]*Assignment, error)
	ListByDateRange(ctx context.Context, orgID uint, start, end time.Time) ([]*Assignment, error)
	Delete(ctx context.Context, id uint, orgID uint) (bool, error)
}
