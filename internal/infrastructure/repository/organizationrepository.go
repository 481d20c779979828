package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rosterd/internal/domain/organization"
	"rosterd/internal/infrastructure/persistence/mappers"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/db"
	"rosterd/internal/shared/errors"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(database *gorm.DB) organization.Repository {
	return &OrganizationRepository{db: database}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return mappers.OrganizationToDomain(&model), nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OrganizationModel{}).
		Where("id = ?", org.ID).
		Updates(map[string]interface{}{
			"name":     org.Name,
			"timezone": org.Timezone,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("organization not found")
	}

	return nil
}

func (r *OrganizationRepository) ListClassifications(ctx context.Context, orgID uint) ([]*organization.Classification, error) {
	var classificationModels []models.ClassificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("org_id = ?", orgID).
		Order("name ASC").
		Find(&classificationModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}

	classifications := make([]*organization.Classification, 0, len(classificationModels))
	for i := range classificationModels {
		classifications = append(classifications, mappers.ClassificationToDomain(&classificationModels[i]))
	}

	return classifications, nil
}

func (r *OrganizationRepository) GetClassification(ctx context.Context, id uint, orgID uint) (*organization.Classification, error) {
	var model models.ClassificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get classification: %w", err)
	}

	return mappers.ClassificationToDomain(&model), nil
}

func (r *OrganizationRepository) CreateClassification(ctx context.Context, c *organization.Classification) error {
	model := mappers.ClassificationToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create classification: %w", err)
	}

	c.ID = model.ID
	return nil
}

func (r *OrganizationRepository) UpdateClassification(ctx context.Context, c *organization.Classification) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ClassificationModel{}).
		Where("id = ? AND org_id = ?", c.ID, c.OrgID).
		Updates(map[string]interface{}{
			"name":         c.Name,
			"abbreviation": c.Abbreviation,
			"is_active":    c.IsActive,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update classification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("classification not found")
	}

	return nil
}

func (r *OrganizationRepository) ListTeams(ctx context.Context, orgID uint) ([]*organization.Team, error) {
	var teamModels []models.TeamModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("org_id = ? AND is_active = ?", orgID, true).
		Order("name ASC").
		Find(&teamModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*organization.Team, 0, len(teamModels))
	for i := range teamModels {
		teams = append(teams, mappers.TeamToDomain(&teamModels[i]))
	}

	return teams, nil
}

func (r *OrganizationRepository) ListOTReasons(ctx context.Context, orgID uint) ([]*organization.OTReason, error) {
	var reasonModels []models.OTReasonModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("org_id = ? AND is_active = ?", orgID, true).
		Order("code ASC").
		Find(&reasonModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list OT reasons: %w", err)
	}

	reasons := make([]*organization.OTReason, 0, len(reasonModels))
	for i := range reasonModels {
		reasons = append(reasons, mappers.OTReasonToDomain(&reasonModels[i]))
	}

	return reasons, nil
}

func (r *OrganizationRepository) GetOTReason(ctx context.Context, id uint, orgID uint) (*organization.OTReason, error) {
	var model models.OTReasonModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ? AND org_id = ?", id, orgID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OT reason: %w", err)
	}

	return mappers.OTReasonToDomain(&model), nil
}
