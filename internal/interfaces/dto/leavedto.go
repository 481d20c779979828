package dto

import (
	"time"

	leaveapp "rosterd/internal/application/leave"
	"rosterd/internal/domain/leave"
	"rosterd/internal/shared/biztime"
)

type CreateLeaveRequest struct {
	LeaveTypeID uint     `json:"leave_type_id" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Hours       *float64 `json:"hours"`
	Reason      *string  `json:"reason"`
}

func (r *CreateLeaveRequest) ToCommand(orgID, userID uint) (leaveapp.CreateCommand, error) {
	start, err := biztime.ParseDate(r.StartDate)
	if err != nil {
		return leaveapp.CreateCommand{}, err
	}
	end, err := biztime.ParseDate(r.EndDate)
	if err != nil {
		return leaveapp.CreateCommand{}, err
	}
	return leaveapp.CreateCommand{
		OrgID:       orgID,
		UserID:      userID,
		LeaveTypeID: r.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Hours:       r.Hours,
		Reason:      r.Reason,
	}, nil
}

type ReviewLeaveRequest struct {
	Status        string  `json:"status" binding:"required"`
	ReviewerNotes *string `json:"reviewer_notes"`
}

type LeaveResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	LeaveTypeID   uint      `json:"leave_type_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Hours         *float64  `json:"hours"`
	Reason        *string   `json:"reason"`
	Status        string    `json:"status"`
	ReviewedBy    *uint     `json:"reviewed_by"`
	ReviewerNotes *string   `json:"reviewer_notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewLeaveResponse(r *leave.Request) LeaveResponse {
	return LeaveResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		LeaveTypeID:   r.LeaveTypeID,
		StartDate:     biztime.FormatDate(r.StartDate),
		EndDate:       biztime.FormatDate(r.EndDate),
		Hours:         r.Hours,
		Reason:        r.Reason,
		Status:        r.Status.String(),
		ReviewedBy:    r.ReviewedBy,
		ReviewerNotes: r.ReviewerNotes,
		CreatedAt:     r.CreatedAt,
	}
}

func NewLeaveResponses(requests []*leave.Request) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveResponse(r))
	}
	return out
}

type LeaveTypeResponse struct {
	ID               uint   `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	RequiresApproval bool   `json:"requires_approval"`
}

func NewLeaveTypeResponses(types []*leave.Type) []LeaveTypeResponse {
	out := make([]LeaveTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, LeaveTypeResponse{
			ID:               t.ID,
			Code:             t.Code,
			Name:             t.Name,
			RequiresApproval: t.RequiresApproval,
		})
	}
	return out
}
