package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosterd/internal/domain/roster"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
	"rosterd/internal/shared/errors"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(database *gorm.DB) roster.TemplateRepository {
	return &TemplateRepository{db: database}
}

func (r *TemplateRepository) Create(ctx context.Context, template *roster.ShiftTemplate) error {
	model := mappers.TemplateToModel(template)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create shift template: %w", err)
	}

	template.ID = model.ID
	template.CreatedAt = model.CreatedAt
	return nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uint, orgID uint) (*roster.ShiftTemplate, error) {
	var model models.ShiftTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}

	return mappers.TemplateToDomain(&model), nil
}

func (r *TemplateRepository) List(ctx context.Context, orgID uint) ([]*roster.ShiftTemplate, error) {
	var templateModels []models.ShiftTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("org_id = ?", orgID).
		Order("name ASC").
		Find(&templateModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shift templates: %w", err)
	}

	templates := make([]*roster.ShiftTemplate, 0, len(templateModels))
	for i := range templateModels {
		templates = append(templates, mappers.TemplateToDomain(&templateModels[i]))
	}

	return templates, nil
}

func (r *TemplateRepository) Update(ctx context.Context, template *roster.ShiftTemplate) error {
	model := mappers.TemplateToModel(template)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ShiftTemplateModel{}).
		Where("id = ? AND org_id = ?", model.ID, model.OrgID).
		Select("*").
		Omit("id", "org_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update shift template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("shift template not found")
	}

	return nil
}
