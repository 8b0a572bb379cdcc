package usecases

import (
	"context"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/ticket"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
	"github.com/atrium-inc/atrium/internal/shared/utils"
)

type ListTicketsQuery struct {
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

type TicketSummary struct {
	TicketID     uint
	Number       string
	Title        string
	CategoryCode string
	Priority     string
	Status       string
	SiteID       uint
	AssignedTo   *uint
	SLADeadline  *time.Time
	IsVague      bool
	FloorNumber  *int
	Location     string
	CreatedAt    time.Time
}

type ListTicketsResult struct {
	Tickets    []TicketSummary
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	tickets ticket.TicketRepository
	logger  logger.Interface
}

func NewListTicketsUseCase(tickets ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{tickets: tickets, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.tickets.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, TicketSummary{
			TicketID:     t.ID(),
			Number:       t.Number(),
			Title:        t.Title(),
			CategoryCode: t.CategoryCode(),
			Priority:     t.Priority().String(),
			Status:       t.Status().String(),
			SiteID:       t.SiteID(),
			AssignedTo:   t.AssignedTo(),
			SLADeadline:  t.SLADeadline(),
			IsVague:      t.IsVague(),
			FloorNumber:  t.FloorNumber(),
			Location:     t.Location(),
			CreatedAt:    t.CreatedAt(),
		})
	}

	return &ListTicketsResult{
		Tickets:    summaries,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: utils.TotalPages(total, filter.PageSize),
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := ticket.TicketFilter{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.CategoryCode != "" {
		code := query.CategoryCode
		filter.CategoryCode = &code
	}
	if query.SiteID != 0 {
		siteID := query.SiteID
		filter.SiteID = &siteID
	}
	if query.RaisedBy != 0 {
		raisedBy := query.RaisedBy
		filter.RaisedBy = &raisedBy
	}
	if query.AssignedTo != 0 {
		assignedTo := query.AssignedTo
		filter.AssignedTo = &assignedTo
	}

	return filter, nil
}
