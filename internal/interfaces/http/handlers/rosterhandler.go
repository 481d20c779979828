package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	rosterapp "rosterd/internal/application/roster"
	"rosterd/internal/interfaces/dto"
	"rosterd/internal/shared/biztime"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

type RosterHandler struct {
	rosterService *rosterapp.Service
	logger        logger.Interface
}

func NewRosterHandler(rosterService *rosterapp.Service, logger logger.Interface) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		logger:        logger,
	}
}

// parseDateRange reads the start/end query parameters. Both are
// required for range-scoped listings.
func parseDateRange(c *gin.Context) (start, end time.Time, err error) {
	rawStart := c.Query("start")
	rawEnd := c.Query("end")
	if rawStart == "" || rawEnd == "" {
		return start, end, errors.NewValidationError("start and end query parameters are required")
	}

	start, err = biztime.ParseDate(rawStart)
	if err != nil {
		return start, end, errors.NewValidationError("start must be a YYYY-MM-DD date")
	}
	end, err = biztime.ParseDate(rawEnd)
	if err != nil {
		return start, end, errors.NewValidationError("end must be a YYYY-MM-DD date")
	}
	return start, end, nil
}

// ListTemplates handles GET /api/shifts/templates
func (h *RosterHandler) ListTemplates(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	templates, err := h.rosterService.ListTemplates(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewTemplateResponses(templates))
}

// CreateTemplate handles POST /api/shifts/templates
func (h *RosterHandler) CreateTemplate(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateTemplateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	template, err := h.rosterService.CreateTemplate(c.Request.Context(), req.ToCommand(orgID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewTemplateResponse(template), "Shift template created successfully")
}

// GetTemplate handles GET /api/shifts/templates/:id
func (h *RosterHandler) GetTemplate(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "shift template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	template, err := h.rosterService.GetTemplate(c.Request.Context(), id, orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewTemplateResponse(template))
}

// UpdateTemplate handles PUT /api/shifts/templates/:id
func (h *RosterHandler) UpdateTemplate(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "shift template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateTemplateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	template, err := h.rosterService.UpdateTemplate(c.Request.Context(), id, orgID, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewTemplateResponse(template), "Shift template updated successfully")
}

// ListShifts handles GET /api/shifts/scheduled
func (h *RosterHandler) ListShifts(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	params := utils.ParseListParams(c)
	shifts, err := h.rosterService.ListShifts(c.Request.Context(), orgID, start, end, params.Limit, params.Offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewShiftResponses(shifts))
}

// CreateShift handles POST /api/shifts/scheduled
func (h *RosterHandler) CreateShift(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateShiftRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("date must be a YYYY-MM-DD date"))
		return
	}

	shift, err := h.rosterService.CreateShift(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewShiftResponse(shift), "Scheduled shift created successfully")
}

// GetShift handles GET /api/shifts/scheduled/:id
func (h *RosterHandler) GetShift(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "scheduled shift")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	shift, err := h.rosterService.GetShift(c.Request.Context(), id, orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewShiftContextResponse(shift))
}

// DeleteShift handles DELETE /api/shifts/scheduled/:id
func (h *RosterHandler) DeleteShift(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "scheduled shift")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.rosterService.DeleteShift(c.Request.Context(), id, orgID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Scheduled shift deleted successfully")
}

// GetSchedule handles GET /api/schedule
func (h *RosterHandler) GetSchedule(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	params := utils.ParseListParams(c)
	staffing, err := h.rosterService.Schedule(c.Request.Context(), orgID, start, end, params.Limit, params.Offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewScheduleResponse(staffing))
}

// CreateAssignment handles POST /api/schedule/assignments
func (h *RosterHandler) CreateAssignment(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateAssignmentRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignment, err := h.rosterService.CreateAssignment(c.Request.Context(), req.ToCommand(orgID, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewAssignmentResponse(assignment), "Assignment created successfully")
}

// DeleteAssignment handles DELETE /api/schedule/assignments/:id
func (h *RosterHandler) DeleteAssignment(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.rosterService.DeleteAssignment(c.Request.Context(), id, orgID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Assignment deleted successfully")
}
