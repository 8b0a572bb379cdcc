package usecases

import (
	"context"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
}

type AssignTicketResult struct {
	TicketID    uint
	Number      string
	Status      string
	AssignedTo  uint
	SLADeadline *time.Time
}

// AssignTicketUseCase handles a manual assignment or a waitlist claim. Unlike
// auto-assignment it targets a named user, but the same two gates apply: the
// assignee must be an active member of the ticket's site and must hold an
// availability record for the ticket's skill group.
type AssignTicketUseCase struct {
	tickets      ticket.TicketRepository
	memberships  staffing.MembershipStore
	availability staffing.AvailabilityStore
	publisher    events.EventPublisher
	logger       logger.Interface
}

func NewAssignTicketUseCase(
	tickets ticket.TicketRepository,
	memberships staffing.MembershipStore,
	availability staffing.AvailabilityStore,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		tickets:      tickets,
		memberships:  memberships,
		availability: availability,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	t, err := uc.tickets.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	member, err := uc.memberships.ActiveMember(ctx, cmd.AssigneeID, t.SiteID())
	if err != nil {
		uc.logger.Errorw("membership check failed", "user_id", cmd.AssigneeID, "error", err)
		return nil, err
	}
	if member == nil {
		return nil, errors.NewValidationError("assignee is not an active member of the ticket's site")
	}
	if member.Role.IsTenant() {
		return nil, errors.NewValidationError("tenants cannot be assigned tickets")
	}

	if t.SkillGroupID() != nil {
		hasGroup, err := uc.availability.HasSkillGroup(ctx, cmd.AssigneeID, *t.SkillGroupID(), t.SiteID())
		if err != nil {
			uc.logger.Errorw("skill group check failed", "user_id", cmd.AssigneeID, "error", err)
			return nil, err
		}
		if !hasGroup {
			return nil, errors.NewValidationError("assignee does not belong to the ticket's skill group")
		}
	}

	if err := t.Assign(cmd.AssigneeID, time.Now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tickets.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewTicketAssignedEvent(t, cmd.AssigneeID)); err != nil {
			uc.logger.Warnw("failed to publish assignment event", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "number", t.Number(), "assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:    t.ID(),
		Number:      t.Number(),
		Status:      t.Status().String(),
		AssignedTo:  cmd.AssigneeID,
		SLADeadline: t.SLADeadline(),
	}, nil
}
