package models

import "time"

// UserModel is the persistence shape for employees. Relationships are
// managed by application logic, not foreign key associations.
type UserModel struct {
	ID               uint    `gorm:"primaryKey"`
	OrgID            uint    `gorm:"not null;index"`
	EmployeeID       *string `gorm:"size:50"`
	FirstName        string  `gorm:"size:100;not null"`
	LastName         string  `gorm:"size:100;not null"`
	Email            string  `gorm:"uniqueIndex;size:255;not null"`
	Phone            *string `gorm:"size:30"`
	PasswordHash     string  `gorm:"size:255;not null"`
	Role             string  `gorm:"size:20;not null;default:employee"`
	ClassificationID *uint   `gorm:"index"`
	EmployeeType     string  `gorm:"size:30;not null;default:regular_full_time"`
	HireDate         *time.Time
	SeniorityDate    *time.Time
	IsActive         bool `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return "users"
}
