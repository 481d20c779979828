package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rosterd/internal/domain/overtime"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
	"rosterd/internal/shared/errors"
)

// OTLedgerRepository accumulates overtime hours. Increments run as
// SQL-level `hours = hours + ?` so concurrent accumulation for the same
// key never loses an update; a lost race on insert falls back to the
// update path.
type OTLedgerRepository struct {
	db *gorm.DB
}

func NewOTLedgerRepository(database *gorm.DB) overtime.LedgerRepository {
	return &OTLedgerRepository{db: database}
}

func (r *OTLedgerRepository) AccumulateWorked(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error {
	return r.accumulate(ctx, userID, fiscalYear, classificationID, "hours_worked", delta)
}

func (r *OTLedgerRepository) AccumulateDeclined(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, delta float64) error {
	return r.accumulate(ctx, userID, fiscalYear, classificationID, "hours_declined", delta)
}

func (r *OTLedgerRepository) accumulate(ctx context.Context, userID uint, fiscalYear int, classificationID *uint, column string, delta float64) error {
	tx := db.GetTxFromContext(ctx, r.db)

	updated, err := r.tryIncrement(tx, userID, fiscalYear, classificationID, column, delta)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	row := &models.OTHoursModel{
		UserID:           userID,
		FiscalYear:       fiscalYear,
		ClassificationID: classificationID,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	switch column {
	case "hours_worked":
		row.HoursWorked = delta
	case "hours_declined":
		row.HoursDeclined = delta
	}

	if err := tx.Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			// Another transaction created the row first; add to it.
			updated, retryErr := r.tryIncrement(tx, userID, fiscalYear, classificationID, column, delta)
			if retryErr != nil {
				return retryErr
			}
			if !updated {
				return fmt.Errorf("ledger row vanished during accumulate retry")
			}
			return nil
		}
		return fmt.Errorf("failed to create ledger row: %w", err)
	}

	return nil
}

func (r *OTLedgerRepository) tryIncrement(tx *gorm.DB, userID uint, fiscalYear int, classificationID *uint, column string, delta float64) (bool, error) {
	result := r.scopeKey(tx.Model(&models.OTHoursModel{}), userID, fiscalYear, classificationID).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to accumulate ledger hours: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *OTLedgerRepository) GeneralHoursWorked(ctx context.Context, userID uint, fiscalYear int) (float64, error) {
	entry, err := r.GetEntry(ctx, userID, fiscalYear, nil)
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, nil
	}
	return entry.HoursWorked, nil
}

func (r *OTLedgerRepository) GetEntry(ctx context.Context, userID uint, fiscalYear int, classificationID *uint) (*overtime.Entry, error) {
	var model models.OTHoursModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := r.scopeKey(tx, userID, fiscalYear, classificationID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	return &overtime.Entry{
		ID:               model.ID,
		UserID:           model.UserID,
		FiscalYear:       model.FiscalYear,
		ClassificationID: model.ClassificationID,
		HoursWorked:      model.HoursWorked,
		HoursDeclined:    model.HoursDeclined,
	}, nil
}

func (r *OTLedgerRepository) scopeKey(tx *gorm.DB, userID uint, fiscalYear int, classificationID *uint) *gorm.DB {
	tx = tx.Where("user_id = ? AND fiscal_year = ?", userID, fiscalYear)
	if classificationID == nil {
		return tx.Where("classification_id IS NULL")
	}
	return tx.Where("classification_id = ?", *classificationID)
}
