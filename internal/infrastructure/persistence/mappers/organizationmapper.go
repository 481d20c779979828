package mappers

import (
	"rosterd/internal/domain/organization"
	"rosterd/internal/infrastructure/persistence/models"
)

func OrganizationToDomain(model *models.OrganizationModel) *organization.Organization {
	return &organization.Organization{
		ID:        model.ID,
		Name:      model.Name,
		Timezone:  model.Timezone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ClassificationToModel(c *organization.Classification) *models.ClassificationModel {
	return &models.ClassificationModel{
		ID:           c.ID,
		OrgID:        c.OrgID,
		Name:         c.Name,
		Abbreviation: c.Abbreviation,
		IsActive:     c.IsActive,
	}
}

func ClassificationToDomain(model *models.ClassificationModel) *organization.Classification {
	return &organization.Classification{
		ID:           model.ID,
		OrgID:        model.OrgID,
		Name:         model.Name,
		Abbreviation: model.Abbreviation,
		IsActive:     model.IsActive,
	}
}

func TeamToDomain(model *models.TeamModel) *organization.Team {
	return &organization.Team{
		ID:       model.ID,
		OrgID:    model.OrgID,
		Name:     model.Name,
		IsActive: model.IsActive,
	}
}

func OTReasonToDomain(model *models.OTReasonModel) *organization.OTReason {
	return &organization.OTReason{
		ID:       model.ID,
		OrgID:    model.OrgID,
		Code:     model.Code,
		Label:    model.Label,
		IsActive: model.IsActive,
	}
}
