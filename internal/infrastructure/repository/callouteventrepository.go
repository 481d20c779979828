package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rosterd/internal/domain/callout"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
)

// CalloutEventRepository persists callout events. Events carry no org
// column; org scope resolves through the scheduled shift, so a lookup
// from the wrong org behaves exactly like a missing row.
type CalloutEventRepository struct {
	db     *gorm.DB
	mapper mappers.CalloutMapper
}

func NewCalloutEventRepository(database *gorm.DB) callout.EventRepository {
	return &CalloutEventRepository{
		db:     database,
		mapper: mappers.NewCalloutMapper(),
	}
}

func (r *CalloutEventRepository) Create(ctx context.Context, event *callout.Event) error {
	model := r.mapper.EventToModel(event)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create callout event: %w", err)
	}

	return event.SetID(model.ID)
}

func (r *CalloutEventRepository) GetByID(ctx context.Context, id uint, orgID uint) (*callout.Event, error) {
	return r.getByID(ctx, id, orgID, false)
}

func (r *CalloutEventRepository) GetByIDForUpdate(ctx context.Context, id uint, orgID uint) (*callout.Event, error) {
	return r.getByID(ctx, id, orgID, true)
}

func (r *CalloutEventRepository) getByID(ctx context.Context, id uint, orgID uint, forUpdate bool) (*callout.Event, error) {
	var model models.CalloutEventModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where(
		"id = ? AND EXISTS (SELECT 1 FROM scheduled_shifts ss WHERE ss.id = callout_events.scheduled_shift_id AND ss.org_id = ?)",
		id, orgID,
	)
	if forUpdate && r.db.Dialector.Name() == "postgres" {
		// sqlite has no FOR UPDATE; its single writer serializes
		// transactions anyway.
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "callout_events"}})
	}

	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get callout event: %w", err)
	}

	return r.mapper.EventToDomain(&model)
}

func (r *CalloutEventRepository) UpdateStatus(ctx context.Context, event *callout.Event) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CalloutEventModel{}).
		Where("id = ?", event.ID()).
		Updates(map[string]interface{}{
			"status":     event.Status().String(),
			"updated_at": event.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update callout event status: %w", result.Error)
	}

	return nil
}

func (r *CalloutEventRepository) List(ctx context.Context, orgID uint, limit, offset int) ([]*callout.Event, error) {
	var eventModels []models.CalloutEventModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("EXISTS (SELECT 1 FROM scheduled_shifts ss WHERE ss.id = callout_events.scheduled_shift_id AND ss.org_id = ?)", orgID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&eventModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list callout events: %w", err)
	}

	events := make([]*callout.Event, 0, len(eventModels))
	for i := range eventModels {
		event, err := r.mapper.EventToDomain(&eventModels[i])
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
