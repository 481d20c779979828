package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosterd/internal/domain/callout"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
)

type CalloutAttemptRepository struct {
	db     *gorm.DB
	mapper mappers.CalloutMapper
}

func NewCalloutAttemptRepository(database *gorm.DB) callout.AttemptRepository {
	return &CalloutAttemptRepository{
		db:     database,
		mapper: mappers.NewCalloutMapper(),
	}
}

func (r *CalloutAttemptRepository) Create(ctx context.Context, attempt *callout.Attempt) error {
	model := r.mapper.AttemptToModel(attempt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create callout attempt: %w", err)
	}

	return attempt.SetID(model.ID)
}

func (r *CalloutAttemptRepository) CountByEvent(ctx context.Context, eventID uint) (int, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.CalloutAttemptModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count callout attempts: %w", err)
	}

	return int(count), nil
}

func (r *CalloutAttemptRepository) ListByEvent(ctx context.Context, eventID uint) ([]*callout.Attempt, error) {
	var attemptModels []models.CalloutAttemptModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("event_id = ?", eventID).
		Order("list_position ASC").
		Find(&attemptModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list callout attempts: %w", err)
	}

	attempts := make([]*callout.Attempt, 0, len(attemptModels))
	for i := range attemptModels {
		attempt, err := r.mapper.AttemptToDomain(&attemptModels[i])
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}
