package dto

import (
	"time"

	userapp "rosterd/internal/application/user"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/optional"
)

type CreateUserRequest struct {
	EmployeeID       *string `json:"employee_id"`
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         string  `json:"last_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            *string `json:"phone"`
	Password         string  `json:"password" binding:"required,min=8"`
	Role             string  `json:"role"`
	ClassificationID *uint   `json:"classification_id"`
	EmployeeType     string  `json:"employee_type"`
	HireDate         *string `json:"hire_date"`
	SeniorityDate    *string `json:"seniority_date"`
}

func (r *CreateUserRequest) ToCommand(orgID uint) (userapp.CreateCommand, error) {
	hireDate, err := parseDatePtr(r.HireDate, "hire_date")
	if err != nil {
		return userapp.CreateCommand{}, err
	}
	seniorityDate, err := parseDatePtr(r.SeniorityDate, "seniority_date")
	if err != nil {
		return userapp.CreateCommand{}, err
	}

	return userapp.CreateCommand{
		OrgID:            orgID,
		EmployeeID:       r.EmployeeID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Password:         r.Password,
		Role:             r.Role,
		ClassificationID: r.ClassificationID,
		EmployeeType:     r.EmployeeType,
		HireDate:         hireDate,
		SeniorityDate:    seniorityDate,
	}, nil
}

// UpdateUserRequest distinguishes absent keys from explicit nulls so a
// PUT can clear nullable columns without touching the rest.
type UpdateUserRequest struct {
	EmployeeID       optional.Field[string] `json:"employee_id"`
	FirstName        optional.Field[string] `json:"first_name"`
	LastName         optional.Field[string] `json:"last_name"`
	Email            optional.Field[string] `json:"email"`
	Phone            optional.Field[string] `json:"phone"`
	Password         optional.Field[string] `json:"password"`
	Role             optional.Field[string] `json:"role"`
	ClassificationID optional.Field[uint]   `json:"classification_id"`
	EmployeeType     optional.Field[string] `json:"employee_type"`
	HireDate         optional.Field[string] `json:"hire_date"`
	SeniorityDate    optional.Field[string] `json:"seniority_date"`
}

func (r *UpdateUserRequest) ToCommand() (userapp.UpdateCommand, error) {
	hireDate, err := parseDateField(r.HireDate, "hire_date")
	if err != nil {
		return userapp.UpdateCommand{}, err
	}
	seniorityDate, err := parseDateField(r.SeniorityDate, "seniority_date")
	if err != nil {
		return userapp.UpdateCommand{}, err
	}

	return userapp.UpdateCommand{
		EmployeeID:       r.EmployeeID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Password:         r.Password,
		Role:             r.Role,
		ClassificationID: r.ClassificationID,
		EmployeeType:     r.EmployeeType,
		HireDate:         hireDate,
		SeniorityDate:    seniorityDate,
	}, nil
}

func parseDatePtr(s *string, field string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := biztime.ParseDate(*s)
	if err != nil {
		return nil, errors.NewValidationError(field + " must be a YYYY-MM-DD date")
	}
	return &t, nil
}

// parseDateField converts a tri-state date string into a tri-state time,
// preserving unchanged/null states.
func parseDateField(f optional.Field[string], field string) (optional.Field[time.Time], error) {
	var out optional.Field[time.Time]
	switch f.State() {
	case optional.Null:
		out = optional.NewNull[time.Time]()
	case optional.Set:
		s, _ := f.Value()
		t, err := biztime.ParseDate(s)
		if err != nil {
			return out, errors.NewValidationError(field + " must be a YYYY-MM-DD date")
		}
		out = optional.NewSet(t)
	}
	return out, nil
}
