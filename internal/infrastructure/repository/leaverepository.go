package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosterd/internal/domain/leave"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
	"rosterd/internal/shared/errors"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(database *gorm.DB) leave.Repository {
	return &LeaveRepository{db: database}
}

func (r *LeaveRepository) Create(ctx context.Context, request *leave.Request) error {
	model := mappers.LeaveRequestToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	request.ID = model.ID
	request.CreatedAt = model.CreatedAt
	request.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id uint, orgID uint) (*leave.Request, error) {
	var model models.LeaveRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return mappers.LeaveRequestToDomain(&model), nil
}

func (r *LeaveRepository) List(ctx context.Context, orgID uint, userID *uint, limit, offset int) ([]*leave.Request, error) {
	var requestModels []models.LeaveRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("org_id = ?", orgID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	err := query.
		Order("start_date DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&requestModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	requests := make([]*leave.Request, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, mappers.LeaveRequestToDomain(&requestModels[i]))
	}

	return requests, nil
}

func (r *LeaveRepository) Update(ctx context.Context, request *leave.Request) error {
	model := mappers.LeaveRequestToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.LeaveRequestModel{}).
		Where("id = ? AND org_id = ?", model.ID, model.OrgID).
		Select("*").
		Omit("id", "org_id", "user_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update leave request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("leave request not found")
	}

	return nil
}

func (r *LeaveRepository) ListTypes(ctx context.Context, orgID uint) ([]*leave.Type, error) {
	var typeModels []models.LeaveTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("org_id = ? AND is_active = ?", orgID, true).
		Order("name ASC").
		Find(&typeModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	types := make([]*leave.Type, 0, len(typeModels))
	for i := range typeModels {
		types = append(types, mappers.LeaveTypeToDomain(&typeModels[i]))
	}

	return types, nil
}

func (r *LeaveRepository) GetType(ctx context.Context, id uint, orgID uint) (*leave.Type, error) {
	var model models.LeaveTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}

	return mappers.LeaveTypeToDomain(&model), nil
}
