package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	leaveapp "rosterd/internal/application/leave"
	"rosterd/internal/interfaces/dto"
	"rosterd/internal/shared/authorization"
	"rosterd/internal/shared/errors"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

type LeaveHandler struct {
	leaveService *leaveapp.Service
	logger       logger.Interface
}

func NewLeaveHandler(leaveService *leaveapp.Service, logger logger.Interface) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
		logger:       logger,
	}
}

// ListLeave handles GET /api/leave
func (h *LeaveHandler) ListLeave(c *gin.Context) {
	userID, orgID, role, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var filterUser *uint
	if raw := c.Query("user_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user_id filter"))
			return
		}
		u := uint(v)
		filterUser = &u
	}

	params := utils.ParseListParams(c)
	requests, err := h.leaveService.List(c.Request.Context(), orgID, userID, authorization.ParseUserRole(role), filterUser, params.Limit, params.Offset)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewLeaveResponses(requests))
}

// CreateLeave handles POST /api/leave
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateLeaveRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(orgID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("dates must be YYYY-MM-DD"))
		return
	}

	request, err := h.leaveService.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewLeaveResponse(request), "Leave request created successfully")
}

// GetLeave handles GET /api/leave/:id
func (h *LeaveHandler) GetLeave(c *gin.Context) {
	userID, orgID, role, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "leave request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	request, err := h.leaveService.Get(c.Request.Context(), id, orgID, userID, authorization.ParseUserRole(role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewLeaveResponse(request))
}

// CancelLeave handles DELETE /api/leave/:id
func (h *LeaveHandler) CancelLeave(c *gin.Context) {
	userID, orgID, role, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "leave request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.leaveService.Cancel(c.Request.Context(), id, orgID, userID, authorization.ParseUserRole(role)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Leave request cancelled successfully")
}

// ReviewLeave handles PATCH /api/leave/:id/review
func (h *LeaveHandler) ReviewLeave(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "leave request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ReviewLeaveRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	request, err := h.leaveService.Review(c.Request.Context(), id, orgID, userID, req.Status, req.ReviewerNotes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewLeaveResponse(request), "Leave request reviewed successfully")
}

// ListLeaveTypes handles GET /api/leave/types
func (h *LeaveHandler) ListLeaveTypes(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	types, err := h.leaveService.ListTypes(c.Request.Context(), orgID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewLeaveTypeResponses(types))
}
