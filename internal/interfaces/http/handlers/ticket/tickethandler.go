package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atrium-inc/atrium/internal/application/intake/usecases"
	"github.com/atrium-inc/atrium/internal/interfaces/http/middleware"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
	"github.com/atrium-inc/atrium/internal/shared/utils"
)

type TicketHandler struct {
	intakeUC      usecases.IntakeTicketExecutor
	importUC      usecases.ImportTicketsExecutor
	assignUC      usecases.AssignTicketExecutor
	reassignUC    usecases.BulkReassignExecutor
	changeStateUC usecases.ChangeStatusExecutor
	pauseUC       usecases.PauseWorkExecutor
	slaUC         usecases.GetSLAProgressExecutor
	listUC        usecases.ListTicketsExecutor
	logger        logger.Interface
}

func NewTicketHandler(
	intakeUC usecases.IntakeTicketExecutor,
	importUC usecases.ImportTicketsExecutor,
	assignUC usecases.AssignTicketExecutor,
	reassignUC usecases.BulkReassignExecutor,
	changeStateUC usecases.ChangeStatusExecutor,
	pauseUC usecases.PauseWorkExecutor,
	slaUC usecases.GetSLAProgressExecutor,
	listUC usecases.ListTicketsExecutor,
) *TicketHandler {
	return &TicketHandler{
		intakeUC:      intakeUC,
		importUC:      importUC,
		assignUC:      assignUC,
		reassignUC:    reassignUC,
		changeStateUC: changeStateUC,
		pauseUC:       pauseUC,
		slaUC:         slaUC,
		listUC:        listUC,
		logger:        logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	cmd := req.ToCommand(middleware.CurrentUserID(c))

	result, err := h.intakeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ImportTickets handles POST /tickets/import
func (h *TicketHandler) ImportTickets(c *gin.Context) {
	var req ImportTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for import tickets", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	cmd := req.ToCommand(middleware.CurrentUserID(c))

	result, err := h.importUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Import completed")
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// BulkReassign handles POST /tickets/reassign
func (h *TicketHandler) BulkReassign(c *gin.Context) {
	var req BulkReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for bulk reassign", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	result, err := h.reassignUC.Execute(c.Request.Context(), usecases.BulkReassignCommand{
		SiteID:    req.SiteID,
		TicketIDs: req.TicketIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reassignment sweep completed", result)
}

// ChangeStatus handles POST /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	result, err := h.changeStateUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		ChangedBy: middleware.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// PauseWork handles POST /tickets/:id/pause
func (h *TicketHandler) PauseWork(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PauseWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	result, err := h.pauseUC.Execute(c.Request.Context(), usecases.PauseWorkCommand{
		TicketID: ticketID,
		Pause:    req.Pause,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work pause state updated", result)
}

// GetSLAProgress handles GET /tickets/:id/sla
func (h *TicketHandler) GetSLAProgress(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.slaUC.Execute(c.Request.Context(), usecases.GetSLAProgressQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}
