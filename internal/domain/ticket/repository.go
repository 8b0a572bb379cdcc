package ticket

import (
	"context"

	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	GetByBatchID(ctx context.Context, batchID string) ([]*Ticket, error)
	GetOverdue(ctx context.Context, siteID uint) ([]*Ticket, error)
}

type TicketFilter struct {
	Status       *vo.TicketStatus
	Priority     *vo.Priority
	CategoryCode *string
	SiteID       *uint
	RaisedBy     *uint
	AssignedTo   *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ImportBatchRepository interface {
	Save(ctx context.Context, batch *ImportBatch) error
	Update(ctx context.Context, batch *ImportBatch) error
	GetByID(ctx context.Context, batchID string) (*ImportBatch, error)
}
