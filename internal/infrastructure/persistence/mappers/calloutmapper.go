package mappers

import (
	"rosterd/internal/domain/callout"
	"rosterd/internal/infrastructure/persistence/models"
)

// CalloutMapper converts callout entities to and from persistence models.
type CalloutMapper interface {
	EventToModel(e *callout.Event) *models.CalloutEventModel
	EventToDomain(model *models.CalloutEventModel) (*callout.Event, error)
	AttemptToModel(a *callout.Attempt) *models.CalloutAttemptModel
	AttemptToDomain(model *models.CalloutAttemptModel) (*callout.Attempt, error)
}

type CalloutMapperImpl struct{}

func NewCalloutMapper() CalloutMapper {
	return &CalloutMapperImpl{}
}

func (m *CalloutMapperImpl) EventToModel(e *callout.Event) *models.CalloutEventModel {
	return &models.CalloutEventModel{
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

func (m *CalloutMapperImpl) EventToDomain(model *models.CalloutEventModel) (*callout.Event, error) {
	return callout.ReconstructEvent(
		model.ID,
		model.ScheduledShiftID,
		model.InitiatedBy,
		model.ReasonID,
		model.ReasonText,
		model.ClassificationID,
		callout.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CalloutMapperImpl) AttemptToModel(a *callout.Attempt) *models.CalloutAttemptModel {
	return &models.CalloutAttemptModel{
		ID:               a.ID(),
		EventID:          a.EventID(),
		UserID:           a.UserID(),
		ListPosition:     a.ListPosition(),
		ContactedAt:      a.ContactedAt(),
		Response:         a.Response().String(),
		OTHoursAtContact: a.OTHoursAtContact(),
		Notes:            a.Notes(),
	}
}

func (m *CalloutMapperImpl) AttemptToDomain(model *models.CalloutAttemptModel) (*callout.Attempt, error) {
	return callout.ReconstructAttempt(
		model.ID,
		model.EventID,
		model.UserID,
		model.ListPosition,
		model.ContactedAt,
		callout.Response(model.Response),
		model.OTHoursAtContact,
		model.Notes,
	)
}
