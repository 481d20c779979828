// Package leave implements leave request workflows: submission,
// role-scoped listing, owner cancellation, and reviewer decisions.
package leave

import (
	"context"
	"fmt"
	"time"

	"rosterd/internal/domain/leave"
	"rosterd/internal/shared/authorization"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
)

type Service struct {
	leaveRepo leave.Repository
	logger    logger.Interface
}

func NewService(leaveRepo leave.Repository, logger logger.Interface) *Service {
	return &Service{
		leaveRepo: leaveRepo,
		logger:    logger,
	}
}

type CreateCommand struct {
	OrgID       uint
	UserID      uint
	LeaveTypeID uint
	StartDate   time.Time
	EndDate     time.Time
	Hours       *float64
	Reason      *string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*leave.Request, error) {
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	leaveType, err := s.leaveRepo.GetType(ctx, cmd.LeaveTypeID, cmd.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}
	if leaveType == nil {
		return nil, errors.NewNotFoundError("leave type not found")
	}

	status := leave.StatusPending
	if !leaveType.RequiresApproval {
		status = leave.StatusApproved
	}

	now := time.Now().UTC()
	request := &leave.Request{
		OrgID:       cmd.OrgID,
		UserID:      cmd.UserID,
		LeaveTypeID: cmd.LeaveTypeID,
		StartDate:   biztime.Date(cmd.StartDate),
		EndDate:     biztime.Date(cmd.EndDate),
		Hours:       cmd.Hours,
		Reason:      cmd.Reason,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.leaveRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.logger.Infow("leave request created",
		"request_id", request.ID,
		"user_id", cmd.UserID,
		"status", request.Status,
	)
	return request, nil
}

// Get returns a leave request. Employees only see their own requests;
// anyone else's request is masked as not found.
func (s *Service) Get(ctx context.Context, id, orgID, callerID uint, role authorization.UserRole) (*leave.Request, error) {
	request, err := s.leaveRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return nil, errors.NewNotFoundError("leave request not found")
	}
	if request.UserID != callerID && !role.CanApproveLeave() {
		return nil, errors.NewNotFoundError("leave request not found")
	}
	return request, nil
}

// List returns leave requests. Employees are restricted to their own;
// reviewers see the whole org, optionally filtered by user.
func (s *Service) List(ctx context.Context, orgID, callerID uint, role authorization.UserRole, userID *uint, limit, offset int) ([]*leave.Request, error) {
	if !role.CanApproveLeave() {
		userID = &callerID
	}

	requests, err := s.leaveRepo.List(ctx, orgID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Cancel withdraws the caller's own pending request.
func (s *Service) Cancel(ctx context.Context, id, orgID, callerID uint, role authorization.UserRole) error {
	request, err := s.leaveRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return errors.NewNotFoundError("leave request not found")
	}
	if request.UserID != callerID {
		// Reviewers learn the request exists but cannot cancel it;
		// everyone else gets the not-found mask.
		if role.CanApproveLeave() {
			return errors.NewForbiddenError("only the requester can cancel a leave request")
		}
		return errors.NewNotFoundError("leave request not found")
	}

	if err := request.Cancel(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	s.logger.Infow("leave request cancelled", "request_id", id, "user_id", callerID)
	return nil
}

// Review applies an approve or deny decision to a pending request.
func (s *Service) Review(ctx context.Context, id, orgID, reviewerID uint, status string, notes *string) (*leave.Request, error) {
	reviewStatus, err := leave.ParseReviewStatus(status)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	request, err := s.leaveRepo.GetByID(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return nil, errors.NewNotFoundError("leave request not found")
	}

	if err := request.Review(reviewStatus, reviewerID, notes); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.logger.Infow("leave request reviewed",
		"request_id", id,
		"status", request.Status,
		"reviewer_id", reviewerID,
	)
	return request, nil
}

func (s *Service) ListTypes(ctx context.Context, orgID uint) ([]*leave.Type, error) {
	types, err := s.leaveRepo.ListTypes(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}
