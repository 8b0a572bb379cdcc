package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atrium-inc/atrium/internal/application/intake/usecases"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=5000"`
	SiteID      uint   `json:"site_id" binding:"required"`
	IsInternal  bool   `json:"is_internal"`
}

func (r *CreateTicketRequest) ToCommand(raisedBy uint) usecases.IntakeTicketCommand {
	return usecases.IntakeTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		SiteID:      r.SiteID,
		RaisedBy:    raisedBy,
		IsInternal:  r.IsInternal,
	}
}

type ImportRowRequest struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=5000"`
	RaisedBy    uint   `json:"raised_by"`
}

type ImportTicketsRequest struct {
	Filename string             `json:"filename" binding:"required,max=255"`
	SiteID   uint               `json:"site_id" binding:"required"`
	Rows     []ImportRowRequest `json:"rows" binding:"required,min=1"`
}

func (r *ImportTicketsRequest) ToCommand(requestedBy uint) usecases.ImportTicketsCommand {
	rows := make([]usecases.ImportRow, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = usecases.ImportRow{
			Title:       row.Title,
			Description: row.Description,
			RaisedBy:    row.RaisedBy,
		}
	}

	return usecases.ImportTicketsCommand{
		Filename:    r.Filename,
		SiteID:      r.SiteID,
		RequestedBy: requestedBy,
		Rows:        rows,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type BulkReassignRequest struct {
	SiteID    uint   `json:"site_id" binding:"required"`
	TicketIDs []uint `json:"ticket_ids"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PauseWorkRequest struct {
	Pause bool `json:"pause"`
}

type ListTicketsRequest struct {
	Status       string
	Priority     string
	CategoryCode string
	SiteID       uint
	RaisedBy     uint
	AssignedTo   uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:       r.Status,
		Priority:     r.Priority,
		CategoryCode: r.CategoryCode,
		SiteID:       r.SiteID,
		RaisedBy:     r.RaisedBy,
		AssignedTo:   r.AssignedTo,
		Page:         r.Page,
		PageSize:     r.PageSize,
		SortBy:       r.SortBy,
		SortOrder:    r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		CategoryCode: c.Query("category"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
	}

	for param, target := range map[string]*uint{
		"site_id":     &req.SiteID,
		"raised_by":   &req.RaisedBy,
		"assigned_to": &req.AssignedTo,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid " + param)
		}
		*target = uint(value)
	}

	return req, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
