// Package overtime holds the OT-hour ledger: per-user, per-fiscal-year,
// per-classification accumulators of hours worked and declined under
// overtime. The ledger is the sole authority for "current OT hours";
// it is never recomputed from attempt history.
package overtime

import (
	"context"
	"fmt"
)

// Entry is one ledger row. ClassificationID nil means the general
// (unclassified) ledger. Hours only ever accumulate within a fiscal
// year; a missing row reads as zero.
type Entry struct {
	ID               uint
	UserID           uint
	FiscalYear       int
	ClassificationID *uint
	HoursWorked      float64
	HoursDeclined    float64
}

// Validate checks ledger row invariants.
func (e *Entry) Validate() error {
	if e.UserID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if e.FiscalYear < 1970 {
		return fmt.Errorf("implausible fiscal year %d", e.FiscalYear)
	}
	if e.HoursWorked < 0 || e.HoursDeclined < 0 {
		return fmt.Errorf("ledger hours cannot be negative")
	}
	return nil
}

// LedgerRepository accumulates and reads OT hours. Accumulation is
// insert-or-add with database-level `hours = hours + delta` arithmetic,
// so concurrent updates for the same user cannot lose increments.
type LedgerRepository interface {
	// AccumulateWorked adds delta to hours_worked for the keyed row,
	// creating it if absent. Must be called inside the transaction that
	// records the triggering attempt.
	AccumulateWorked(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error
	// AccumulateDeclined adds delta to hours_declined the same way.
	AccumulateDeclined(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error
	// GeneralHoursWorked returns hours_worked from the general
	// (nil-classification) ledger, zero when no row exists.
	GeneralHoursWorked(ctx context.Context, userID uint, fiscalYear int) (float64, error)
	// GetEntry returns the keyed row, or nil when absent.
	GetEntry(ctx context.Context, userID uint, fiscalYear int, classificationID *uint) (*Entry, error)
}
