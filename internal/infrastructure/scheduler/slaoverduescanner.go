package scheduler

import (
	"context"

	"github.com/atrium-inc/atrium/internal/application/notification/usecases"
	vo "github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// OverdueTicketSource is the slice of the ticket store the sweep needs.
type OverdueTicketSource interface {
	// ListOpenSiteIDs returns the distinct site IDs that currently have
	// tickets in flight.
	ListOpenSiteIDs(ctx context.Context) ([]uint, error)

	// GetOverdue returns the site's tickets whose SLA deadline has passed.
	GetOverdue(ctx context.Context, siteID uint) ([]*ticket.Ticket, error)
}

// SLAOverdueScanner sweeps every active site for tickets past their SLA
// deadline and fans each one out as a ticket_overdue event. The fan-out's
// cooldown keeps a ticket that stays overdue across sweeps from notifying on
// every run.
type SLAOverdueScanner struct {
	tickets OverdueTicketSource
	fanOut  usecases.FanOutExecutor
	logger  logger.Interface
}

func NewSLAOverdueScanner(
	tickets OverdueTicketSource,
	fanOut usecases.FanOutExecutor,
	log logger.Interface,
) *SLAOverdueScanner {
	return &SLAOverdueScanner{
		tickets: tickets,
		fanOut:  fanOut,
		logger:  log.With("component", "scheduler.sla-overdue"),
	}
}

// Execute runs one sweep. A failure on one site or ticket never stops the
// rest of the sweep. Returns the number of overdue tickets found.
func (s *SLAOverdueScanner) Execute(ctx context.Context) (int, error) {
	siteIDs, err := s.tickets.ListOpenSiteIDs(ctx)
	if err != nil {
		return 0, err
	}

	found := 0
	for _, siteID := range siteIDs {
		overdue, err := s.tickets.GetOverdue(ctx, siteID)
		if err != nil {
			s.logger.Errorw("failed to load overdue tickets",
				"site_id", siteID, "error", err)
			continue
		}

		found += len(overdue)

		for _, t := range overdue {
			result, err := s.fanOut.Execute(ctx, usecases.FanOutCommand{
				EventType: vo.TypeTicketOverdue.String(),
				TicketID:  t.ID(),
			})
			if err != nil {
				s.logger.Errorw("overdue fan-out failed",
					"ticket_id", t.ID(), "number", t.Number(), "error", err)
				continue
			}

			if !result.Skipped {
				s.logger.Infow("overdue ticket notified",
					"ticket_id", t.ID(),
					"number", t.Number(),
					"recipients", result.Recipients,
					"dispatched", result.Dispatched)
			}
		}
	}

	return found, nil
}
