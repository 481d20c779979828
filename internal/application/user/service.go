// Package user implements employee management: org-scoped listing,
// admin creation, tri-state partial updates, and soft deactivation.
package user

import (
	"context"
	"fmt"
	"time"

	"rosterd/internal/domain/user"
	"rosterd/internal/shared/authorization"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/optional"
)

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewService(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

type CreateCommand struct {
	OrgID            uint
	EmployeeID       *string
	FirstName        string
	LastName         string
	Email            string
	Phone            *string
	Password         string
	Role             string
	ClassificationID *uint
	EmployeeType     string
	HireDate         *time.Time
	SeniorityDate    *time.Time
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*user.User, error) {
	if cmd.FirstName == "" || cmd.LastName == "" || cmd.Email == "" {
		return nil, errors.NewValidationError("first name, last name, and email are required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	employeeType := user.EmployeeType(cmd.EmployeeType)
	if cmd.EmployeeType == "" {
		employeeType = user.EmployeeRegularFullTime
	}
	if !employeeType.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid employee type %q", cmd.EmployeeType))
	}

	role := authorization.UserRole(cmd.Role)
	if cmd.Role == "" {
		role = authorization.RoleEmployee
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid role %q", cmd.Role))
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		OrgID:            cmd.OrgID,
		EmployeeID:       cmd.EmployeeID,
		FirstName:        cmd.FirstName,
		LastName:         cmd.LastName,
		Email:            cmd.Email,
		Phone:            cmd.Phone,
		PasswordHash:     hash,
		Role:             role,
		ClassificationID: cmd.ClassificationID,
		EmployeeType:     employeeType,
		HireDate:         cmd.HireDate,
		SeniorityDate:    cmd.SeniorityDate,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already in use")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infow("user created", "user_id", u.ID, "org_id", u.OrgID)
	return u, nil
}

func (s *Service) Get(ctx context.Context, id, orgID uint) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, orgID uint, activeOnly bool, limit, offset int) ([]*user.User, error) {
	users, err := s.userRepo.List(ctx, orgID, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateCommand carries tri-state fields: absent keys leave the stored
// value alone, explicit nulls clear nullable fields.
type UpdateCommand struct {
	EmployeeID       optional.Field[string]
	FirstName        optional.Field[string]
	LastName         optional.Field[string]
	Email            optional.Field[string]
	Phone            optional.Field[string]
	Password         optional.Field[string]
	Role             optional.Field[string]
	ClassificationID optional.Field[uint]
	EmployeeType     optional.Field[string]
	HireDate         optional.Field[time.Time]
	SeniorityDate    optional.Field[time.Time]
}

func (s *Service) Update(ctx context.Context, id, orgID uint, cmd UpdateCommand) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	for name, f := range map[string]optional.Field[string]{
		"first_name": cmd.FirstName,
		"last_name":  cmd.LastName,
		"email":      cmd.Email,
	} {
		if f.IsNull() {
			return nil, errors.NewValidationError(name + " cannot be null")
		}
	}

	if v, ok := cmd.Role.Value(); ok {
		role := authorization.UserRole(v)
		if !role.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role %q", v))
		}
		u.Role = role
	} else if cmd.Role.IsNull() {
		return nil, errors.NewValidationError("role cannot be null")
	}

	if v, ok := cmd.EmployeeType.Value(); ok {
		et := user.EmployeeType(v)
		if !et.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid employee type %q", v))
		}
		u.EmployeeType = et
	} else if cmd.EmployeeType.IsNull() {
		return nil, errors.NewValidationError("employee_type cannot be null")
	}

	if v, ok := cmd.Password.Value(); ok {
		if len(v) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := s.hasher.Hash(v)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = hash
	} else if cmd.Password.IsNull() {
		return nil, errors.NewValidationError("password cannot be null")
	}

	cmd.FirstName.Apply(&u.FirstName)
	cmd.LastName.Apply(&u.LastName)
	cmd.Email.Apply(&u.Email)
	cmd.EmployeeID.ApplyPtr(&u.EmployeeID)
	cmd.Phone.ApplyPtr(&u.Phone)
	cmd.ClassificationID.ApplyPtr(&u.ClassificationID)
	cmd.HireDate.ApplyPtr(&u.HireDate)
	cmd.SeniorityDate.ApplyPtr(&u.SeniorityDate)
	u.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already in use")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

func (s *Service) Deactivate(ctx context.Context, id, orgID uint) error {
	ok, err := s.userRepo.Deactivate(ctx, id, orgID)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if !ok {
		return errors.NewNotFoundError("user not found")
	}

	s.logger.Infow("user deactivated", "user_id", id, "org_id", orgID)
	return nil
}
