package dto

import (
	"time"

	"rosterd/internal/application/callout/usecases"
	"rosterd/internal/domain/callout"
	"rosterd/internal/shared/biztime"
)

type OpenEventRequest struct {
	ScheduledShiftID uint    `json:"scheduled_shift_id" binding:"required"`
	ReasonID         *uint   `json:"reason_id"`
	ReasonText       *string `json:"reason_text"`
	ClassificationID *uint   `json:"classification_id"`
}

func (r *OpenEventRequest) ToCommand(orgID, initiatedBy uint) usecases.OpenEventCommand {
	return usecases.OpenEventCommand{
		OrgID:            orgID,
		InitiatedBy:      initiatedBy,
		ScheduledShiftID: r.ScheduledShiftID,
		ReasonID:         r.ReasonID,
		ReasonText:       r.ReasonText,
		ClassificationID: r.ClassificationID,
	}
}

type RecordAttemptRequest struct {
	UserID   uint    `json:"user_id" binding:"required"`
	Response string  `json:"response" binding:"required"`
	Notes    *string `json:"notes"`
}

func (r *RecordAttemptRequest) ToCommand(orgID, eventID, recordedBy uint) usecases.RecordAttemptCommand {
	return usecases.RecordAttemptCommand{
		OrgID:      orgID,
		EventID:    eventID,
		UserID:     r.UserID,
		RecordedBy: recordedBy,
		Response:   r.Response,
		Notes:      r.Notes,
	}
}

type EventResponse struct {
	ID               uint      `json:"id"`
	ScheduledShiftID uint      `json:"scheduled_shift_id"`
	InitiatedBy      uint      `json:"initiated_by"`
	ReasonID         *uint     `json:"reason_id"`
	ReasonText       *string   `json:"reason_text"`
	ClassificationID *uint     `json:"classification_id"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewEventResponse(e *callout.Event) EventResponse {
	return EventResponse{
		ID:               e.ID(),
		ScheduledShiftID: e.ScheduledShiftID(),
		InitiatedBy:      e.InitiatedBy(),
		ReasonID:         e.ReasonID(),
		ReasonText:       e.ReasonText(),
		ClassificationID: e.ClassificationID(),
		Status:           e.Status().String(),
		CreatedAt:        e.CreatedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
}

func NewEventResponses(events []*callout.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}

type AttemptResponse struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	ListPosition     int       `json:"list_position"`
	ContactedAt      time.Time `json:"contacted_at"`
	Response         string    `json:"response"`
	OTHoursAtContact float64   `json:"ot_hours_at_contact"`
	Notes            *string   `json:"notes"`
}

func NewAttemptResponses(attempts []*callout.Attempt) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, AttemptResponse{
			ID:               a.ID(),
			UserID:           a.UserID(),
			ListPosition:     a.ListPosition(),
			ContactedAt:      a.ContactedAt(),
			Response:         a.Response().String(),
			OTHoursAtContact: a.OTHoursAtContact(),
			Notes:            a.Notes(),
		})
	}
	return out
}

type EventDetailResponse struct {
	Event    EventResponse         `json:"event"`
	Shift    *ShiftContextResponse `json:"shift,omitempty"`
	Attempts []AttemptResponse     `json:"attempts"`
}

func NewEventDetailResponse(detail *usecases.EventDetail) EventDetailResponse {
	resp := EventDetailResponse{
		Event:    NewEventResponse(detail.Event),
		Attempts: NewAttemptResponses(detail.Attempts),
	}
	if detail.Shift != nil {
		shift := NewShiftContextResponse(detail.Shift)
		resp.Shift = &shift
	}
	return resp
}

type RankedCandidateResponse struct {
	Position          int     `json:"position"`
	UserID            uint    `json:"user_id"`
	EmployeeID        *string `json:"employee_id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Classification    *string `json:"classification"`
	SeniorityDate     *string `json:"seniority_date"`
	OTHours           float64 `json:"ot_hours"`
	Available         bool    `json:"available"`
	UnavailableReason string  `json:"unavailable_reason,omitempty"`
}

type CalloutListResponse struct {
	Event      EventResponse             `json:"event"`
	Shift      ShiftContextResponse      `json:"shift"`
	Candidates []RankedCandidateResponse `json:"candidates"`
}

func NewCalloutListResponse(result *usecases.ComputeListResult) CalloutListResponse {
	candidates := make([]RankedCandidateResponse, 0, len(result.Candidates))
	for _, rc := range result.Candidates {
		var seniority *string
		if rc.SeniorityDate != nil {
			s := biztime.FormatDate(*rc.SeniorityDate)
			seniority = &s
		}
		candidates = append(candidates, RankedCandidateResponse{
			Position:          rc.Position,
			UserID:            rc.UserID,
			EmployeeID:        rc.EmployeeID,
			FirstName:         rc.FirstName,
			LastName:          rc.LastName,
			Classification:    rc.ClassificationAbbr,
			SeniorityDate:     seniority,
			OTHours:           rc.OTHours,
			Available:         rc.Available(),
			UnavailableReason: rc.UnavailableReason(),
		})
	}
	return CalloutListResponse{
		Event:      NewEventResponse(result.Event),
		Shift:      NewShiftContextResponse(result.Shift),
		Candidates: candidates,
	}
}
