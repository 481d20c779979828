package models

import "time"

type ShiftTemplateModel struct {
	ID              uint   `gorm:"primaryKey"`
	OrgID           uint   `gorm:"not null;index"`
	Name            string `gorm:"size:100;not null"`
	StartTime       string `gorm:"size:5;not null"`
	EndTime         string `gorm:"size:5;not null"`
	CrossesMidnight bool   `gorm:"not null;default:false"`
	DurationMinutes int    `gorm:"not null"`
	Color           string `gorm:"size:20;not null;default:''"`
	IsActive        bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ShiftTemplateModel) TableName() string {
	return "shift_templates"
}

type ScheduledShiftModel struct {
	ID                uint      `gorm:"primaryKey"`
	OrgID             uint      `gorm:"not null;index:idx_scheduled_shifts_org_date"`
	ShiftTemplateID   uint      `gorm:"not null;index"`
	Date              time.Time `gorm:"type:date;not null;index:idx_scheduled_shifts_org_date"`
	RequiredHeadcount int       `gorm:"not null;default:1"`
	SlotID            *uint
	Notes             *string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ScheduledShiftModel) TableName() string {
	return "scheduled_shifts"
}

// AssignmentModel has a unique (shift, user) pair; the database enforces
// the at-most-one-assignment invariant under concurrent acceptance.
type AssignmentModel struct {
	ID               uint    `gorm:"primaryKey"`
	ScheduledShiftID uint    `gorm:"not null;uniqueIndex:idx_assignments_shift_user"`
	UserID           uint    `gorm:"not null;uniqueIndex:idx_assignments_shift_user;index"`
	Position         *string `gorm:"size:50"`
	IsOvertime       bool    `gorm:"not null;default:false"`
	IsTrade          bool    `gorm:"not null;default:false"`
	Notes            *string `gorm:"type:text"`
	CreatedBy        uint    `gorm:"not null"`
	CreatedAt        time.Time
}

func (AssignmentModel) TableName() string {
	return "shift_assignments"
}
