package callout

import (
	"fmt"
	"time"
)

// Event is one overtime-coverage effort for one scheduled shift. It is
// created open by a supervisor and mutated only through Fill and Cancel;
// events are never physically deleted.
type Event struct {
	id               uint
	scheduledShiftID uint
	initiatedBy      uint
	reasonID         *uint
	reasonText       *string
	classificationID *uint
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

func NewEvent(scheduledShiftID, initiatedBy uint, reasonID *uint, reasonText *string, classificationID *uint) (*Event, error) {
	if scheduledShiftID == 0 {
		return nil, fmt.Errorf("scheduled shift ID is required")
	}
	if initiatedBy == 0 {
		return nil, fmt.Errorf("initiator ID is required")
	}

	now := time.Now().UTC()
	return &Event{
		scheduledShiftID: scheduledShiftID,
		initiatedBy:      initiatedBy,
		reasonID:         reasonID,
		reasonText:       reasonText,
		classificationID: classificationID,
		status:           StatusOpen,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructEvent(
	id uint,
	scheduledShiftID uint,
	initiatedBy uint,
	reasonID *uint,
	reasonText *string,
	classificationID *uint,
	status Status,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if scheduledShiftID == 0 {
		return nil, fmt.Errorf("scheduled shift ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Event{
		id:               id,
		scheduledShiftID: scheduledShiftID,
		initiatedBy:      initiatedBy,
		reasonID:         reasonID,
		reasonText:       reasonText,
		classificationID: classificationID,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) ScheduledShiftID() uint {
	return e.scheduledShiftID
}

func (e *Event) InitiatedBy() uint {
	return e.initiatedBy
}

func (e *Event) ReasonID() *uint {
	return e.reasonID
}

func (e *Event) ReasonText() *string {
	return e.reasonText
}

func (e *Event) ClassificationID() *uint {
	return e.classificationID
}

func (e *Event) Status() Status {
	return e.status
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// Fill transitions the event to filled. Legal only from open.
func (e *Event) Fill() error {
	if !e.status.CanTransitionTo(StatusFilled) {
		return fmt.Errorf("cannot fill event with status %s", e.status)
	}
	e.status = StatusFilled
	e.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the event to cancelled. Legal only from open.
func (e *Event) Cancel() error {
	if !e.status.CanTransitionTo(StatusCancelled) {
		return fmt.Errorf("cannot cancel event with status %s", e.status)
	}
	e.status = StatusCancelled
	e.updatedAt = time.Now().UTC()
	return nil
}
