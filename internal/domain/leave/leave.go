// Package leave models leave requests; approved leave overlapping a
// shift date makes an employee unavailable for callout.
package leave

import (
	"context"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDenied || s == StatusCancelled
}

// ParseReviewStatus accepts only the statuses a reviewer may set.
func ParseReviewStatus(s string) (Status, error) {
	st := Status(s)
	if st != StatusApproved && st != StatusDenied {
		return "", fmt.Errorf("review status must be approved or denied, got %q", s)
	}
	return st, nil
}

// Request is an employee's leave request over an inclusive date range.
type Request struct {
	ID            uint
	OrgID         uint
	UserID        uint
	LeaveTypeID   uint
	StartDate     time.Time // date-only
	EndDate       time.Time // date-only, inclusive
	Hours         *float64
	Reason        *string
	Status        Status
	ReviewedBy    *uint
	ReviewerNotes *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Covers reports whether the request's range includes the given date.
func (r *Request) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}

// Review applies a reviewer decision. Only pending requests can be
// reviewed.
func (r *Request) Review(status Status, reviewerID uint, notes *string) error {
	if r.Status != StatusPending {
		return fmt.Errorf("cannot review request with status %s", r.Status)
	}
	if status != StatusApproved && status != StatusDenied {
		return fmt.Errorf("invalid review status %s", status)
	}
	r.Status = status
	r.ReviewedBy = &reviewerID
	r.ReviewerNotes = notes
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Cancel withdraws a pending request. Owners can only cancel their own
// pending requests.
func (r *Request) Cancel() error {
	if r.Status != StatusPending {
		return fmt.Errorf("cannot cancel request with status %s", r.Status)
	}
	r.Status = StatusCancelled
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Type is an org-configurable leave type reference record.
type Type struct {
	ID               uint
	OrgID            uint
	Code             string
	Name             string
	RequiresApproval bool
	IsActive         bool
}

// Repository persists leave requests, org-scoped.
type Repository interface {
	Create(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, id uint, orgID uint) (*Request, error)
	List(ctx context.Context, orgID uint, userID *uint, limit, offset int) ([]*Request, error)
	Update(ctx context.Context, request *Request) error
	ListTypes(ctx context.Context, orgID uint) ([]*Type, error)
	GetType(ctx context.Context, id uint, orgID uint) (*Type, error)
}
