package usecases

import (
	"context"

	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ChangedBy uint
}

type ChangeStatusResult struct {
	TicketID  uint
	Number    string
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	tickets   ticket.TicketRepository
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewChangeStatusUseCase(
	tickets ticket.TicketRepository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		tickets:   tickets,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.tickets.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Idempotent repeat: nothing changed, nothing to persist.
	if oldStatus == newStatus {
		return &ChangeStatusResult{
			TicketID:  t.ID(),
			Number:    t.Number(),
			OldStatus: oldStatus.String(),
			NewStatus: newStatus.String(),
		}, nil
	}

	if err := uc.tickets.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.publishTransition(t, newStatus)

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "number", t.Number(),
		"old_status", oldStatus.String(), "new_status", newStatus.String())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}, nil
}

func (uc *ChangeStatusUseCase) publishTransition(t *ticket.Ticket, newStatus vo.TicketStatus) {
	if uc.publisher == nil {
		return
	}

	var event events.DomainEvent
	switch {
	case newStatus.IsResolved():
		event = ticket.NewTicketCompletedEvent(t)
	case newStatus.IsWaitlist():
		event = ticket.NewTicketWaitlistedEvent(t)
	default:
		return
	}

	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish status event", "ticket_id", t.ID(), "error", err)
	}
}
