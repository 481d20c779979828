// Package user models employees within an organization.
package user

import (
	"context"
	"time"

	"rosterd/internal/shared/authorization"
)

type EmployeeType string

const (
	EmployeeRegularFullTime EmployeeType = "regular_full_time"
	EmployeeJobShare        EmployeeType = "job_share"
	EmployeeMedicalPartTime EmployeeType = "medical_part_time"
	EmployeeTempPartTime    EmployeeType = "temp_part_time"
)

func (e EmployeeType) IsValid() bool {
	switch e {
	case EmployeeRegularFullTime, EmployeeJobShare, EmployeeMedicalPartTime, EmployeeTempPartTime:
		return true
	}
	return false
}

// User is an employee record. SeniorityDate drives overtime tie-breaks;
// inactive users never appear on callout lists and cannot authenticate.
type User struct {
	ID               uint
	OrgID            uint
	EmployeeID       *string
	FirstName        string
	LastName         string
	Email            string
	Phone            *string
	PasswordHash     string
	Role             authorization.UserRole
	ClassificationID *uint
	EmployeeType     EmployeeType
	HireDate         *time.Time
	SeniorityDate    *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Repository persists users, org-scoped.
type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByID returns nil, nil when the user is absent from the org.
	GetByID(ctx context.Context, id uint, orgID uint) (*User, error)
	// GetActiveByID additionally requires is_active.
	GetActiveByID(ctx context.Context, id uint, orgID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, orgID uint, activeOnly bool, limit, offset int) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Deactivate(ctx context.Context, id uint, orgID uint) (bool, error)
}
