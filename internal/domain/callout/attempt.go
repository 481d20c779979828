package callout

import (
	"fmt"
	"time"
)

// Attempt is one recorded contact outcome within a callout event. It is
// an audit record: written exactly once and never mutated. OTHoursAtContact
// snapshots the candidate's general-ledger hours at the moment of contact
// and is never recomputed later; ListPosition captures the rank the
// candidate held when contacted, which a later ranking recomputation is
// free to disagree with.
type Attempt struct {
	id               uint
	eventID          uint
	userID           uint
	listPosition     int
	contactedAt      time.Time
	response         Response
	otHoursAtContact float64
	notes            *string
}

func NewAttempt(eventID, userID uint, listPosition int, response Response, otHoursAtContact float64, notes *string) (*Attempt, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if listPosition < 1 {
		return nil, fmt.Errorf("list position must be positive")
	}
	if !response.IsValid() {
		return nil, fmt.Errorf("invalid response: %s", response)
	}
	if otHoursAtContact < 0 {
		return nil, fmt.Errorf("OT hours snapshot cannot be negative")
	}

	return &Attempt{
		eventID:          eventID,
		userID:           userID,
		listPosition:     listPosition,
		contactedAt:      time.Now().UTC(),
		response:         response,
		otHoursAtContact: otHoursAtContact,
		notes:            notes,
	}, nil
}

func ReconstructAttempt(
	id uint,
	eventID uint,
	userID uint,
	listPosition int,
	contactedAt time.Time,
	response Response,
	otHoursAtContact float64,
	notes *string,
) (*Attempt, error) {
	if id == 0 {
		return nil, fmt.Errorf("attempt ID cannot be zero")
	}
	if !response.IsValid() {
		return nil, fmt.Errorf("invalid response: %s", response)
	}

	return &Attempt{
		id:               id,
		eventID:          eventID,
		userID:           userID,
		listPosition:     listPosition,
		contactedAt:      contactedAt,
		response:         response,
		otHoursAtContact: otHoursAtContact,
		notes:            notes,
	}, nil
}

func (a *Attempt) ID() uint {
	return a.id
}

func (a *Attempt) EventID() uint {
	return a.eventID
}

func (a *Attempt) UserID() uint {
	return a.userID
}

func (a *Attempt) ListPosition() int {
	return a.listPosition
}

func (a *Attempt) ContactedAt() time.Time {
	return a.contactedAt
}

func (a *Attempt) Response() Response {
	return a.response
}

func (a *Attempt) OTHoursAtContact() float64 {
	return a.otHoursAtContact
}

func (a *Attempt) Notes() *string {
	return a.notes
}

func (a *Attempt) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attempt ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attempt ID cannot be zero")
	}
	a.id = id
	return nil
}
