package dto

import (
	"time"

	rosterapp "rosterd/internal/application/roster"
	"rosterd/internal/domain/roster"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/optional"
)

type CreateTemplateRequest struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Color     string `json:"color"`
}

func (r *CreateTemplateRequest) ToCommand(orgID uint) rosterapp.CreateTemplateCommand {
	return rosterapp.CreateTemplateCommand{
		OrgID:     orgID,
		Name:      r.Name,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Color:     r.Color,
	}
}

type UpdateTemplateRequest struct {
	Name      optional.Field[string] `json:"name"`
	StartTime optional.Field[string] `json:"start_time"`
	EndTime   optional.Field[string] `json:"end_time"`
	Color     optional.Field[string] `json:"color"`
	IsActive  optional.Field[bool]   `json:"is_active"`
}

func (r *UpdateTemplateRequest) ToCommand() rosterapp.UpdateTemplateCommand {
	return rosterapp.UpdateTemplateCommand{
		Name:      r.Name,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Color:     r.Color,
		IsActive:  r.IsActive,
	}
}

type TemplateResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	CrossesMidnight bool      `json:"crosses_midnight"`
	DurationMinutes int       `json:"duration_minutes"`
	Color           string    `json:"color"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewTemplateResponse(t *roster.ShiftTemplate) TemplateResponse {
	return TemplateResponse{
		ID:              t.ID,
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

func NewTemplateResponses(templates []*roster.ShiftTemplate) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, NewTemplateResponse(t))
	}
	return out
}

type CreateShiftRequest struct {
	ShiftTemplateID   uint    `json:"shift_template_id" binding:"required"`
	Date              string  `json:"date" binding:"required"`
	RequiredHeadcount int     `json:"required_headcount"`
	Notes             *string `json:"notes"`
}

func (r *CreateShiftRequest) ToCommand(orgID uint) (rosterapp.CreateShiftCommand, error) {
	date, err := biztime.ParseDate(r.Date)
	if err != nil {
		return rosterapp.CreateShiftCommand{}, err
	}
	return rosterapp.CreateShiftCommand{
		OrgID:             orgID,
		ShiftTemplateID:   r.ShiftTemplateID,
		Date:              date,
		RequiredHeadcount: r.RequiredHeadcount,
		Notes:             r.Notes,
	}, nil
}

type ShiftResponse struct {
	ID                uint    `json:"id"`
	ShiftTemplateID   uint    `json:"shift_template_id"`
	Date              string  `json:"date"`
	RequiredHeadcount int     `json:"required_headcount"`
	Notes             *string `json:"notes"`
}

func NewShiftResponse(s *roster.ScheduledShift) ShiftResponse {
	return ShiftResponse{
		ID:                s.ID,
		ShiftTemplateID:   s.ShiftTemplateID,
		Date:              biztime.FormatDate(s.Date),
		RequiredHeadcount: s.RequiredHeadcount,
		Notes:             s.Notes,
	}
}

func NewShiftResponses(shifts []*roster.ScheduledShift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, NewShiftResponse(s))
	}
	return out
}

type ShiftContextResponse struct {
	ShiftResponse
	TemplateName    string `json:"template_name"`
	DurationMinutes int    `json:"duration_minutes"`
}

func NewShiftContextResponse(s *roster.ShiftContext) ShiftContextResponse {
	return ShiftContextResponse{
		ShiftResponse:   NewShiftResponse(&s.ScheduledShift),
		TemplateName:    s.TemplateName,
		DurationMinutes: s.DurationMinutes,
	}
}

type CreateAssignmentRequest struct {
	ScheduledShiftID uint    `json:"scheduled_shift_id" binding:"required"`
	UserID           uint    `json:"user_id" binding:"required"`
	Position         *string `json:"position"`
	Notes            *string `json:"notes"`
}

func (r *CreateAssignmentRequest) ToCommand(orgID, createdBy uint) rosterapp.CreateAssignmentCommand {
	return rosterapp.CreateAssignmentCommand{
		OrgID:            orgID,
		ScheduledShiftID: r.ScheduledShiftID,
		UserID:           r.UserID,
		Position:         r.Position,
		Notes:            r.Notes,
		CreatedBy:        createdBy,
	}
}

type AssignmentResponse struct {
	ID               uint    `json:"id"`
	ScheduledShiftID uint    `json:"scheduled_shift_id"`
	UserID           uint    `json:"user_id"`
	Position         *string `json:"position"`
	IsOvertime       bool    `json:"is_overtime"`
	IsTrade          bool    `json:"is_trade"`
	Notes            *string `json:"notes"`
}

func NewAssignmentResponse(a *roster.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:               a.ID,
		ScheduledShiftID: a.ScheduledShiftID,
		UserID:           a.UserID,
		Position:         a.Position,
		IsOvertime:       a.IsOvertime,
		IsTrade:          a.IsTrade,
		Notes:            a.Notes,
	}
}

type ShiftStaffingResponse struct {
	Shift       ShiftResponse        `json:"shift"`
	Assignments []AssignmentResponse `json:"assignments"`
}

func NewScheduleResponse(staffing []*rosterapp.ShiftStaffing) []ShiftStaffingResponse {
	out := make([]ShiftStaffingResponse, 0, len(staffing))
	for _, item := range staffing {
		assignments := make([]AssignmentResponse, 0, len(item.Assignments))
		for _, a := range item.Assignments {
			assignments = append(assignments, NewAssignmentResponse(a))
		}
		out = append(out, ShiftStaffingResponse{
			Shift:       NewShiftResponse(item.Shift),
			Assignments: assignments,
		})
	}
	return out
}
