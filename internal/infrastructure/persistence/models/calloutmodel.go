package models

import "time"

// CalloutEventModel carries no org column; org scope resolves through
// the scheduled shift. Status transitions happen under a row lock.
type CalloutEventModel struct {
	ID               uint `gorm:"primaryKey"`
	ScheduledShiftID uint `gorm:"not null;index"`
	InitiatedBy      uint `gorm:"not null"`
	ReasonID         *uint
	ReasonText       *string `gorm:"type:text"`
	ClassificationID *uint
	Status           string `gorm:"size:20;not null;default:open;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CalloutEventModel) TableName() string {
	return "callout_events"
}

// CalloutAttemptModel rows are append-only. The unique (event, position)
// pair backs the gapless-position invariant under concurrent recording.
type CalloutAttemptModel struct {
	ID               uint      `gorm:"primaryKey"`
	EventID          uint      `gorm:"not null;uniqueIndex:idx_callout_attempts_event_pos"`
	UserID           uint      `gorm:"not null;index"`
	ListPosition     int       `gorm:"not null;uniqueIndex:idx_callout_attempts_event_pos"`
	ContactedAt      time.Time `gorm:"not null"`
	Response         string    `gorm:"size:20;not null"`
	OTHoursAtContact float64   `gorm:"column:ot_hours_at_contact;not null;default:0"`
	Notes            *string   `gorm:"type:text"`
}

func (CalloutAttemptModel) TableName() string {
	return "callout_attempts"
}

// OTHoursModel is one ledger accumulator row. ClassificationID NULL is
// the general ledger; uniqueness of the NULL-classification row is
// enforced by a partial unique index in the SQL migration.
type OTHoursModel struct {
	ID               uint    `gorm:"primaryKey"`
	UserID           uint    `gorm:"not null;index:idx_ot_hours_user_fy"`
	FiscalYear       int     `gorm:"not null;index:idx_ot_hours_user_fy"`
	ClassificationID *uint   `gorm:"index"`
	HoursWorked      float64 `gorm:"not null;default:0"`
	HoursDeclined    float64 `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (OTHoursModel) TableName() string {
	return "ot_hours"
}
