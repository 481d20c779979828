package dto

import (
	orgapp "rosterd/internal/application/organization"
	"rosterd/internal/domain/organization"
	"rosterd/internal/shared/optional"
)

type OrganizationResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

func NewOrganizationResponse(o *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:       o.ID,
		Name:     o.Name,
		Timezone: o.Timezone,
	}
}

type UpdateOrganizationRequest struct {
	Name     optional.Field[string] `json:"name"`
	Timezone optional.Field[string] `json:"timezone"`
}

func (r *UpdateOrganizationRequest) ToCommand() orgapp.UpdateCommand {
	return orgapp.UpdateCommand{
		Name:     r.Name,
		Timezone: r.Timezone,
	}
}

type CreateClassificationRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation"`
}

type UpdateClassificationRequest struct {
	Name         optional.Field[string] `json:"name"`
	Abbreviation optional.Field[string] `json:"abbreviation"`
	IsActive     optional.Field[bool]   `json:"is_active"`
}

func (r *UpdateClassificationRequest) ToCommand() orgapp.UpdateClassificationCommand {
	return orgapp.UpdateClassificationCommand{
		Name:         r.Name,
		Abbreviation: r.Abbreviation,
		IsActive:     r.IsActive,
	}
}

type ClassificationResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	IsActive     bool   `json:"is_active"`
}

func NewClassificationResponse(c *organization.Classification) ClassificationResponse {
	return ClassificationResponse{
		ID:           c.ID,
		Name:         c.Name,
		Abbreviation: c.Abbreviation,
		IsActive:     c.IsActive,
	}
}

func NewClassificationResponses(classifications []*organization.Classification) []ClassificationResponse {
	out := make([]ClassificationResponse, 0, len(classifications))
	for _, c := range classifications {
		out = append(out, NewClassificationResponse(c))
	}
	return out
}

type TeamResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewTeamResponses(teams []*organization.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

type OTReasonResponse struct {
	ID    uint   `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

func NewOTReasonResponses(reasons []*organization.OTReason) []OTReasonResponse {
	out := make([]OTReasonResponse, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, OTReasonResponse{ID: r.ID, Code: r.Code, Label: r.Label})
	}
	return out
}
