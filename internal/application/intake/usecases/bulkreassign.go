package usecases

import (
	"context"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type BulkReassignCommand struct {
	SiteID uint
	// TicketIDs restricts the sweep to an explicit set. Empty means every
	// waitlisted ticket at the site.
	TicketIDs []uint
}

type BulkReassignResult struct {
	Attempted       int
	Assigned        int
	StillWaitlisted []uint
}

// BulkReassignUseCase re-runs resolver location over waitlisted tickets.
// Tickets are processed oldest-first and strictly one at a time, with each
// assignment committed before the next locator call, so earlier tickets get
// first claim on a scarce resolver.
type BulkReassignUseCase struct {
	tickets   ticket.TicketRepository
	locator   ResolverLocator
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewBulkReassignUseCase(
	tickets ticket.TicketRepository,
	locator ResolverLocator,
	publisher events.EventPublisher,
	logger logger.Interface,
) *BulkReassignUseCase {
	return &BulkReassignUseCase{
		tickets:   tickets,
		locator:   locator,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *BulkReassignUseCase) Execute(ctx context.Context, cmd BulkReassignCommand) (*BulkReassignResult, error) {
	uc.logger.Infow("executing bulk reassign", "site_id", cmd.SiteID, "ticket_ids", len(cmd.TicketIDs))

	if cmd.SiteID == 0 {
		return nil, errors.NewValidationError("site ID is required")
	}

	candidates, err := uc.loadCandidates(ctx, cmd)
	if err != nil {
		return nil, err
	}

	result := &BulkReassignResult{}
	for _, t := range candidates {
		if !t.Status().IsWaitlist() || t.SkillGroupID() == nil {
			continue
		}
		result.Attempted++

		resolverID := uc.locator.Locate(ctx, *t.SkillGroupID(), t.SiteID())
		if resolverID == nil {
			result.StillWaitlisted = append(result.StillWaitlisted, t.ID())
			continue
		}

		if err := t.Assign(*resolverID, time.Now()); err != nil {
			uc.logger.Warnw("reassignment rejected by ticket state",
				"ticket_id", t.ID(), "error", err)
			result.StillWaitlisted = append(result.StillWaitlisted, t.ID())
			continue
		}
		if err := uc.tickets.Update(ctx, t); err != nil {
			uc.logger.Warnw("failed to persist reassignment",
				"ticket_id", t.ID(), "error", err)
			result.StillWaitlisted = append(result.StillWaitlisted, t.ID())
			continue
		}

		result.Assigned++
		if uc.publisher != nil {
			if err := uc.publisher.Publish(ticket.NewTicketAssignedEvent(t, *resolverID)); err != nil {
				uc.logger.Warnw("failed to publish assignment event",
					"ticket_id", t.ID(), "error", err)
			}
		}
	}

	uc.logger.Infow("bulk reassign completed",
		"site_id", cmd.SiteID,
		"attempted", result.Attempted,
		"assigned", result.Assigned,
		"still_waitlisted", len(result.StillWaitlisted),
	)

	return result, nil
}

func (uc *BulkReassignUseCase) loadCandidates(ctx context.Context, cmd BulkReassignCommand) ([]*ticket.Ticket, error) {
	if len(cmd.TicketIDs) > 0 {
		candidates := make([]*ticket.Ticket, 0, len(cmd.TicketIDs))
		for _, id := range cmd.TicketIDs {
			t, err := uc.tickets.GetByID(ctx, id)
			if err != nil {
				uc.logger.Warnw("failed to load ticket for reassignment", "ticket_id", id, "error", err)
				continue
			}
			if t == nil || t.SiteID() != cmd.SiteID {
				continue
			}
			candidates = append(candidates, t)
		}
		return candidates, nil
	}

	status := vo.StatusWaitlist
	candidates, _, err := uc.tickets.List(ctx, ticket.TicketFilter{
		Status:    &status,
		SiteID:    &cmd.SiteID,
		SortBy:    "created_at",
		SortOrder: "ASC",
	})
	if err != nil {
		uc.logger.Errorw("failed to list waitlisted tickets", "site_id", cmd.SiteID, "error", err)
		return nil, err
	}
	return candidates, nil
}
