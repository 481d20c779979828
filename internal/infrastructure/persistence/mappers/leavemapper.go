package mappers

import (
	"rosterd/internal/domain/leave"
	"rosterd/internal/infrastructure/persistence/models"
)

func LeaveRequestToModel(r *leave.Request) *models.LeaveRequestModel {
	return &models.LeaveRequestModel{
		ID:            r.ID,
		OrgID:         r.OrgID,
		UserID:        r.UserID,
		LeaveTypeID:   r.LeaveTypeID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Hours:         r.Hours,
		Reason:        r.Reason,
		Status:        r.Status.String(),
		ReviewedBy:    r.ReviewedBy,
		ReviewerNotes: r.ReviewerNotes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func LeaveRequestToDomain(model *models.LeaveRequestModel) *leave.Request {
	return &leave.Request{
		ID:            model.ID,
		OrgID:         model.OrgID,
		UserID:        model.UserID,
		LeaveTypeID:   model.LeaveTypeID,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		Hours:         model.Hours,
		Reason:        model.Reason,
		Status:        leave.Status(model.Status),
		ReviewedBy:    model.ReviewedBy,
		ReviewerNotes: model.ReviewerNotes,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func LeaveTypeToDomain(model *models.LeaveTypeModel) *leave.Type {
	return &leave.Type{
		ID:               model.ID,
		OrgID:            model.OrgID,
		Code:             model.Code,
		Name:             model.Name,
		RequiresApproval: model.RequiresApproval,
		IsActive:         model.IsActive,
	}
}
