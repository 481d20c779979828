package organization

import (
	"context"
	"io"
	"log/slog"

	"rosterd/internal/domain/organization"
	"rosterd/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockOrganizationRepository struct {
	GetByIDFunc              func(ctx context.Context, id uint) (*organization.Organization, error)
	UpdateFunc               func(ctx context.Context, org *organization.Organization) error
	ListClassificationsFunc  func(ctx context.Context, orgID uint) ([]*organization.Classification, error)
	GetClassificationFunc    func(ctx context.Context, id uint, orgID uint) (*organization.Classification, error)
	CreateClassificationFunc func(ctx context.Context, c *organization.Classification) error
	UpdateClassificationFunc func(ctx context.Context, c *organization.Classification) error
	ListTeamsFunc            func(ctx context.Context, orgID uint) ([]*organization.Team, error)
	ListOTReasonsFunc        func(ctx context.Context, orgID uint) ([]*organization.OTReason, error)
	GetOTReasonFunc          func(ctx context.Context, id uint, orgID uint) (*organization.OTReason, error)
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) ListClassifications(ctx context.Context, orgID uint) ([]*organization.Classification, error) {
	if m.ListClassificationsFunc != nil {
		return m.ListClassificationsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetClassification(ctx context.Context, id uint, orgID uint) (*organization.Classification, error) {
	if m.GetClassificationFunc != nil {
		return m.GetClassificationFunc(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) CreateClassification(ctx context.Context, c *organization.Classification) error {
	if m.CreateClassificationFunc != nil {
		return m.CreateClassificationFunc(ctx, c)
	}
	c.ID = 1
	return nil
}

func (m *mockOrganizationRepository) UpdateClassification(ctx context.Context, c *organization.Classification) error {
	if m.UpdateClassificationFunc != nil {
		return m.UpdateClassificationFunc(ctx, c)
	}
	return nil
}

func (m *mockOrganizationRepository) ListTeams(ctx context.Context, orgID uint) ([]*organization.Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) ListOTReasons(ctx context.Context, orgID uint) ([]*organization.OTReason, error) {
	if m.ListOTReasonsFunc != nil {
		return m.ListOTReasonsFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetOTReason(ctx context.Context, id uint, orgID uint) (*organization.OTReason, error) {
	if m.GetOTReasonFunc != nil {
		return m.GetOTReasonFunc(ctx, id, orgID)
	}
	return nil, nil
}
