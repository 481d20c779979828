package callout

import (
	"context"
	"time"
)

// EventRepository persists callout events. All lookups are org-scoped;
// an event whose shift belongs to another org is reported as absent.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	// GetByID returns nil, nil when the event does not exist in the org.
	GetByID(ctx context.Context, id uint, orgID uint) (*Event, error)
	// GetByIDForUpdate locks the event row for the duration of the
	// surrounding transaction. Must be called inside a transaction; it is
	// the serialization point for all state transitions on the event.
	GetByIDForUpdate(ctx context.Context, id uint, orgID uint) (*Event, error)
	// UpdateStatus persists a status transition already applied to the entity.
	UpdateStatus(ctx context.Context, event *Event) error
	List(ctx context.Context, orgID uint, limit, offset int) ([]*Event, error)
}

// AttemptRepository persists contact attempts. Attempts are append-only.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *Attempt) error
	// CountByEvent returns the number of attempts recorded for an event.
	// Callers assigning list positions must hold the event row lock.
	CountByEvent(ctx context.Context, eventID uint) (int, error)
	ListByEvent(ctx context.Context, eventID uint) ([]*Attempt, error)
}

// CandidateReader assembles ranking input for a shift: every active
// employee in the org (optionally restricted to a classification) with
// ledger hours and availability facts resolved against the shift date.
type CandidateReader interface {
	ListCandidates(ctx context.Context, orgID uint, scheduledShiftID uint, shiftDate time.Time, classificationID *uint) ([]Candidate, error)
}
