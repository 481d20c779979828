// Package organization models tenants and their reference data.
package organization

import (
	"context"
	"time"
)

// Organization is one tenant. Every other entity hangs off an org and
// no operation may cross the boundary.
type Organization struct {
	ID        uint
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Classification is a job classification within an org (for example
// dispatcher, paramedic). Usable as a callout filter and as an OT
// ledger dimension.
type Classification struct {
	ID           uint
	OrgID        uint
	Name         string
	Abbreviation string
	IsActive     bool
}

// Team is an org unit used as reference data on the staffing view.
type Team struct {
	ID       uint
	OrgID    uint
	Name     string
	IsActive bool
}

// OTReason is an org-configurable reason code for opening a callout.
type OTReason struct {
	ID       uint
	OrgID    uint
	Code     string
	Label    string
	IsActive bool
}

// Repository persists orgs and their reference data.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Organization, error)
	Update(ctx context.Context, org *Organization) error

	ListClassifications(ctx context.Context, orgID uint) ([]*Classification, error)
	GetClassification(ctx context.Context, id uint, orgID uint) (*Classification, error)
	CreateClassification(ctx context.Context, c *Classification) error
	UpdateClassification(ctx context.Context, c *Classification) error

	ListTeams(ctx context.Context, orgID uint) ([]*Team, error)

	ListOTReasons(ctx context.Context, orgID uint) ([]*OTReason, error)
	GetOTReason(ctx context.Context, id uint, orgID uint) (*OTReason, error)
}
