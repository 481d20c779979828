package mappers

import (
	"rosterd/internal/domain/roster"
	"rosterd/internal/infrastructure/persistence/models"
)

func TemplateToModel(t *roster.ShiftTemplate) *models.ShiftTemplateModel {
	return &models.ShiftTemplateModel{
		ID:              t.ID,
		OrgID:           t.OrgID,
		Name:            t.Name,
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		CrossesMidnight: t.CrossesMidnight,
		DurationMinutes: t.DurationMinutes,
		Color:           t.Color,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
	}
}

func TemplateToDomain(model *models.ShiftTemplateModel) *roster.ShiftTemplate {
	return &roster.ShiftTemplate{
		ID:              model.ID,
		OrgID:           model.OrgID,
		Name:            model.Name,
		StartTime:       model.StartTime,
		EndTime:         model.EndTime,
		CrossesMidnight: model.CrossesMidnight,
		DurationMinutes: model.DurationMinutes,
		Color:           model.Color,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
	}
}

func ShiftToModel(s *roster.ScheduledShift) *models.ScheduledShiftModel {
	return &models.ScheduledShiftModel{
		ID:                s.ID,
		OrgID:             s.OrgID,
		ShiftTemplateID:   s.ShiftTemplateID,
		Date:              s.Date,
		RequiredHeadcount: s.RequiredHeadcount,
		SlotID:            s.SlotID,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
	}
}

func ShiftToDomain(model *models.ScheduledShiftModel) *roster.ScheduledShift {
	return &roster.ScheduledShift{
		ID:                model.ID,
		OrgID:             model.OrgID,
		ShiftTemplateID:   model.ShiftTemplateID,
		Date:              model.Date,
		RequiredHeadcount: model.RequiredHeadcount,
		SlotID:            model.SlotID,
		Notes:             model.Notes,
		CreatedAt:         model.CreatedAt,
	}
}

func AssignmentToModel(a *roster.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:               a.ID,
		ScheduledShiftID: a.ScheduledShiftID,
		UserID:           a.UserID,
		Position:         a.Position,
		IsOvertime:       a.IsOvertime,
		IsTrade:          a.IsTrade,
		Notes:            a.Notes,
		CreatedBy:        a.CreatedBy,
		CreatedAt:        a.CreatedAt,
	}
}

func AssignmentToDomain(model *models.AssignmentModel) *roster.Assignment {
	return &roster.Assignment{
		ID:               model.ID,
		ScheduledShiftID: model.ScheduledShiftID,
		UserID:           model.UserID,
		Position:         model.Position,
		IsOvertime:       model.IsOvertime,
		IsTrade:          model.IsTrade,
		Notes:            model.Notes,
		CreatedBy:        model.CreatedBy,
		CreatedAt:        model.CreatedAt,
	}
}
