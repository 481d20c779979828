package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rosterd/internal/domain/user"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) user.Repository {
	return &UserRepository{db: database}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint, orgID uint) (*user.User, error) {
	return r.get(ctx, id, orgID, false)
}

func (r *UserRepository) GetActiveByID(ctx context.Context, id uint, orgID uint) (*user.User, error) {
	return r.get(ctx, id, orgID, true)
}

func (r *UserRepository) get(ctx context.Context, id uint, orgID uint, activeOnly bool) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("id = ? AND org_id = ?", id, orgID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return mappers.UserToDomain(&model), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mappers.UserToDomain(&model), nil
}

func (r *UserRepository) List(ctx context.Context, orgID uint, activeOnly bool, limit, offset int) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("org_id = ?", orgID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mappers.UserToDomain(&userModels[i]))
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes all columns; tri-state field semantics are resolved by
	// the application layer before the entity reaches this point.
	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND org_id = ?", model.ID, model.OrgID).
		Select("*").
		Omit("id", "org_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, id uint, orgID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND org_id = ?", id, orgID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to deactivate user: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
