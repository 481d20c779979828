package handlers

import (
	"github.com/gin-gonic/gin"

	orgapp "rosterd/internal/application/organization"
	"rosterd/internal/interfaces/dto"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

type OrganizationHandler struct {
	orgService *orgapp.Service
	logger     logger.Interface
}

func NewOrganizationHandler(orgService *orgapp.Service, logger logger.Interface) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		logger:     logger,
	}
}

// GetOrganization handles GET /api/organization
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	org, err := h.orgService.Get(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewOrganizationResponse(org))
}

// UpdateOrganization handles PUT /api/organization
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), orgID, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewOrganizationResponse(org), "Organization updated successfully")
}

// ListClassifications handles GET /api/classifications
func (h *OrganizationHandler) ListClassifications(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	classifications, err := h.orgService.ListClassifications(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewClassificationResponses(classifications))
}

// CreateClassification handles POST /api/classifications
func (h *OrganizationHandler) CreateClassification(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateClassificationRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	classification, err := h.orgService.CreateClassification(c.Request.Context(), orgID, req.Name, req.Abbreviation)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewClassificationResponse(classification), "Classification created successfully")
}

// UpdateClassification handles PUT /api/classifications/:id
func (h *OrganizationHandler) UpdateClassification(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "classification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateClassificationRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	classification, err := h.orgService.UpdateClassification(c.Request.Context(), id, orgID, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewClassificationResponse(classification), "Classification updated successfully")
}

// ListTeams handles GET /api/teams
func (h *OrganizationHandler) ListTeams(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	teams, err := h.orgService.ListTeams(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewTeamResponses(teams))
}

// ListOTReasons handles GET /api/callout/reasons
func (h *OrganizationHandler) ListOTReasons(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	reasons, err := h.orgService.ListOTReasons(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewOTReasonResponses(reasons))
}
