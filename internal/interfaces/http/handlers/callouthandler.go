package handlers

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/application/callout/usecases"
	"rosterd/internal/interfaces/dto"
	"rosterd/internal/shared/logger"
	"rosterd/internal/shared/utils"
)

// CalloutHandler exposes the overtime callout engine: opening events,
// computing ranked contact lists, and recording attempt outcomes.
type CalloutHandler struct {
	openEvent     usecases.OpenEventExecutor
	getEvent      usecases.GetEventExecutor
	listEvents    usecases.ListEventsExecutor
	computeList   usecases.ComputeListExecutor
	recordAttempt usecases.RecordAttemptExecutor
	cancelEvent   usecases.CancelEventExecutor
	logger        logger.Interface
}

func NewCalloutHandler(
	openEvent usecases.OpenEventExecutor,
	getEvent usecases.GetEventExecutor,
	listEvents usecases.ListEventsExecutor,
	computeList usecases.ComputeListExecutor,
	recordAttempt usecases.RecordAttemptExecutor,
	cancelEvent usecases.CancelEventExecutor,
	logger logger.Interface,
) *CalloutHandler {
	return &CalloutHandler{
		openEvent:     openEvent,
		getEvent:      getEvent,
		listEvents:    listEvents,
		computeList:   computeList,
		recordAttempt: recordAttempt,
		cancelEvent:   cancelEvent,
		logger:        logger,
	}
}

// ListEvents handles GET /api/callout/events
func (h *CalloutHandler) ListEvents(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	params := utils.ParseListParams(c)
	result, err := h.listEvents.Execute(c.Request.Context(), usecases.ListEventsQuery{
		OrgID:  orgID,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewEventResponses(result.Events))
}

// OpenEvent handles POST /api/callout/events
func (h *CalloutHandler) OpenEvent(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.OpenEventRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.openEvent.Execute(c.Request.Context(), req.ToCommand(orgID, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Callout event opened successfully")
}

// GetEvent handles GET /api/callout/events/:id
func (h *CalloutHandler) GetEvent(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "callout event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getEvent.Execute(c.Request.Context(), usecases.GetEventQuery{OrgID: orgID, EventID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewEventDetailResponse(detail))
}

// GetList handles GET /api/callout/events/:id/list
func (h *CalloutHandler) GetList(c *gin.Context) {
	_, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "callout event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.computeList.Execute(c.Request.Context(), usecases.ComputeListQuery{OrgID: orgID, EventID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewCalloutListResponse(result))
}

// RecordAttempt handles POST /api/callout/events/:id/attempt
func (h *CalloutHandler) RecordAttempt(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "callout event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RecordAttemptRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordAttempt.Execute(c.Request.Context(), req.ToCommand(orgID, id, userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attempt recorded successfully")
}

// CancelEvent handles PATCH /api/callout/events/:id/cancel
func (h *CalloutHandler) CancelEvent(c *gin.Context) {
	userID, orgID, _, err := utils.GetAuthContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "callout event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancelEvent.Execute(c.Request.Context(), usecases.CancelEventCommand{
		OrgID:       orgID,
		EventID:     id,
		CancelledBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Callout event cancelled successfully")
}
