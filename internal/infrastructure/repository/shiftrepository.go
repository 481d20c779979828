package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rosterd/internal/domain/roster"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(database *gorm.DB) roster.ShiftRepository {
	return &ShiftRepository{db: database}
}

type shiftContextRow struct {
	models.ScheduledShiftModel
	TemplateName    string
	DurationMinutes int
}

func (r *ShiftRepository) GetContext(ctx context.Context, scheduledShiftID uint, orgID uint) (*roster.ShiftContext, error) {
	var row shiftContextRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ScheduledShiftModel{}).
		Select("scheduled_shifts.*, st.name AS template_name, st.duration_minutes").
		Joins("JOIN shift_templates st ON st.id = scheduled_shifts.shift_template_id").
		Where("scheduled_shifts.id = ? AND scheduled_shifts.org_id = ?", scheduledShiftID, orgID).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift context: %w", err)
	}

	return &roster.ShiftContext{
		ScheduledShift:  *mappers.ShiftToDomain(&row.ScheduledShiftModel),
		TemplateName:    row.TemplateName,
		DurationMinutes: row.DurationMinutes,
	}, nil
}

func (r *ShiftRepository) Create(ctx context.Context, shift *roster.ScheduledShift) error {
	model := mappers.ShiftToModel(shift)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create scheduled shift: %w", err)
	}

	shift.ID = model.ID
	shift.CreatedAt = model.CreatedAt
	return nil
}

func (r *ShiftRepository) List(ctx context.Context, orgID uint, start, end time.Time, limit, offset int) ([]*roster.ScheduledShift, error) {
	var shiftModels []models.ScheduledShiftModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("org_id = ? AND date >= ? AND date <= ?", orgID, start, end).
		Order("date ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&shiftModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled shifts: %w", err)
	}

	shifts := make([]*roster.ScheduledShift, 0, len(shiftModels))
	for i := range shiftModels {
		shifts = append(shifts, mappers.ShiftToDomain(&shiftModels[i]))
	}

	return shifts, nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id uint, orgID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ? AND org_id = ?", id, orgID).
		Delete(&models.ScheduledShiftModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete scheduled shift: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
