// Package organization implements tenant settings and org reference
// data: classifications and overtime reason codes.
package organization

import (
	"context"
	"fmt"
	"time"

	"rosterd/internal/domain/organization"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/optional"
)

type Service struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewService(orgRepo organization.Repository, logger logger.Interface) *Service {
	return &Service{
		orgRepo: orgRepo,
		logger:  logger,
	}
}

func (s *Service) Get(ctx context.Context, orgID uint) (*organization.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if org == nil {
		return nil, errors.NewNotFoundError("organization not found")
	}
	return org, nil
}

type UpdateCommand struct {
	Name     optional.Field[string]
	Timezone optional.Field[string]
}

func (s *Service) Update(ctx context.Context, orgID uint, cmd UpdateCommand) (*organization.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	if org == nil {
		return nil, errors.NewNotFoundError("organization not found")
	}

	if cmd.Name.IsNull() || cmd.Timezone.IsNull() {
		return nil, errors.NewValidationError("name and timezone cannot be null")
	}

	if tz, ok := cmd.Timezone.Value(); ok {
		if _, err := time.LoadLocation(tz); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid timezone %q", tz))
		}
	}

	cmd.Name.Apply(&org.Name)
	cmd.Timezone.Apply(&org.Timezone)
	org.UpdatedAt = time.Now().UTC()

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	s.logger.Infow("organization updated", "org_id", orgID)
	return org, nil
}

func (s *Service) ListClassifications(ctx context.Context, orgID uint) ([]*organization.Classification, error) {
	classifications, err := s.orgRepo.ListClassifications(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	return classifications, nil
}

func (s *Service) CreateClassification(ctx context.Context, orgID uint, name, abbreviation string) (*organization.Classification, error) {
	if name == "" {
		return nil, errors.NewValidationError("classification name is required")
	}

	classification := &organization.Classification{
		OrgID:        orgID,
		Name:         name,
		Abbreviation: abbreviation,
		IsActive:     true,
	}

	if err := s.orgRepo.CreateClassification(ctx, classification); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("classification already exists")
		}
		return nil, fmt.Errorf("failed to create classification: %w", err)
	}

	s.logger.Infow("classification created", "classification_id", classification.ID, "org_id", orgID)
	return classification, nil
}

type UpdateClassificationCommand struct {
	Name         optional.Field[string]
	Abbreviation optional.Field[string]
	IsActive     optional.Field[bool]
}

func (s *Service) UpdateClassification(ctx context.Context, id, orgID uint, cmd UpdateClassificationCommand) (*organization.Classification, error) {
	classification, err := s.orgRepo.GetClassification(ctx, id, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get classification: %w", err)
	}
	if classification == nil {
		return nil, errors.NewNotFoundError("classification not found")
	}

	if cmd.Name.IsNull() || cmd.Abbreviation.IsNull() || cmd.IsActive.IsNull() {
		return nil, errors.NewValidationError("name, abbreviation, and is_active cannot be null")
	}

	cmd.Name.Apply(&classification.Name)
	cmd.Abbreviation.Apply(&classification.Abbreviation)
	cmd.IsActive.Apply(&classification.IsActive)

	if err := s.orgRepo.UpdateClassification(ctx, classification); err != nil {
		return nil, fmt.Errorf("failed to update classification: %w", err)
	}
	return classification, nil
}

func (s *Service) ListTeams(ctx context.Context, orgID uint) ([]*organization.Team, error) {
	teams, err := s.orgRepo.ListTeams(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *Service) ListOTReasons(ctx context.Context, orgID uint) ([]*organization.OTReason, error) {
	reasons, err := s.orgRepo.ListOTReasons(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime reasons: %w", err)
	}
	return reasons, nil
}
