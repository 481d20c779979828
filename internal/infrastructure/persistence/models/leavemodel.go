package models

import "time"

type LeaveTypeModel struct {
	ID               uint   `gorm:"primaryKey"`
	OrgID            uint   `gorm:"not null;index"`
	Code             string `gorm:"size:50;not null"`
	Name             string `gorm:"size:100;not null"`
	RequiresApproval bool   `gorm:"not null;default:true"`
	IsActive         bool   `gorm:"not null;default:true"`
}

func (LeaveTypeModel) TableName() string {
	return "leave_types"
}

type LeaveRequestModel struct {
	ID            uint      `gorm:"primaryKey"`
	OrgID         uint      `gorm:"not null;index"`
	UserID        uint      `gorm:"not null;index"`
	LeaveTypeID   uint      `gorm:"not null"`
	StartDate     time.Time `gorm:"type:date;not null;index"`
	EndDate       time.Time `gorm:"type:date;not null;index"`
	Hours         *float64
	Reason        *string `gorm:"type:text"`
	Status        string  `gorm:"size:20;not null;default:pending;index"`
	ReviewedBy    *uint
	ReviewerNotes *string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}
