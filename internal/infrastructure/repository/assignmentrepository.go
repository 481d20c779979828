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
	"rosterd/internal/shared/errors"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) roster.AssignmentRepository {
	return &AssignmentRepository{db: database}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *roster.Assignment) error {
	model := mappers.AssignmentToModel(assignment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user is already assigned to this shift")
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	assignment.ID = model.ID
	assignment.CreatedAt = model.CreatedAt
	return nil
}

// FindOrCreateOvertime is the engine's idempotent assignment write: an
// existing (shift, user) assignment of any kind is returned untouched,
// and a lost insert race resolves by re-reading the winner's row.
func (r *AssignmentRepository) FindOrCreateOvertime(ctx context.Context, scheduledShiftID, userID, createdBy uint) (*roster.Assignment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	existing, err := r.findPair(tx, scheduledShiftID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	model := &models.AssignmentModel{
		ScheduledShiftID: scheduledShiftID,
		UserID:           userID,
		IsOvertime:       true,
		CreatedBy:        createdBy,
		CreatedAt:        time.Now().UTC(),
	}

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			existing, findErr := r.findPair(tx, scheduledShiftID, userID)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create overtime assignment: %w", err)
	}

	return mappers.AssignmentToDomain(model), nil
}

func (r *AssignmentRepository) findPair(tx *gorm.DB, scheduledShiftID, userID uint) (*roster.Assignment, error) {
	var model models.AssignmentModel
	err := tx.Where("scheduled_shift_id = ? AND user_id = ?", scheduledShiftID, userID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	return mappers.AssignmentToDomain(&model), nil
}

func (r *AssignmentRepository) ListByShift(ctx context.Context, scheduledShiftID uint) ([]*roster.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("scheduled_shift_id = ?", scheduledShiftID).
		Order("id ASC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return toAssignments(assignmentModels), nil
}

func (r *AssignmentRepository) ListByDateRange(ctx context.Context, orgID uint, start, end time.Time) ([]*roster.Assignment, error) {
	var assignmentModels []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Joins("JOIN scheduled_shifts ss ON ss.id = shift_assignments.scheduled_shift_id").
		Where("ss.org_id = ? AND ss.date >= ? AND ss.date <= ?", orgID, start, end).
		Order("ss.date ASC, shift_assignments.id ASC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments by date range: %w", err)
	}

	return toAssignments(assignmentModels), nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id uint, orgID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where(
		"id = ? AND EXISTS (SELECT 1 FROM scheduled_shifts ss WHERE ss.id = shift_assignments.scheduled_shift_id AND ss.org_id = ?)",
		id, orgID,
	).Delete(&models.AssignmentModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete assignment: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func toAssignments(assignmentModels []models.AssignmentModel) []*roster.Assignment {
	assignments := make([]*roster.Assignment, 0, len(assignmentModels))
	for i := range assignmentModels {
		assignments = append(assignments, mappers.AssignmentToDomain(&assignmentModels[i]))
	}
	return assignments
}
