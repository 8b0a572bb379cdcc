package usecases

import (
	"context"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type PauseWorkCommand struct {
	TicketID uint
	// Pause true freezes the SLA clock, false resumes it.
	Pause bool
}

type PauseWorkResult struct {
	TicketID           uint
	WorkPaused         bool
	TotalPausedMinutes int
}

// PauseWorkUseCase freezes or resumes SLA accounting on an in-flight ticket,
// e.g. while waiting on a spare part. Pause time is credited back to the
// deadline on resume.
type PauseWorkUseCase struct {
	tickets ticket.TicketRepository
	logger  logger.Interface
}

func NewPauseWorkUseCase(tickets ticket.TicketRepository, logger logger.Interface) *PauseWorkUseCase {
	return &PauseWorkUseCase{tickets: tickets, logger: logger}
}

func (uc *PauseWorkUseCase) Execute(ctx context.Context, cmd PauseWorkCommand) (*PauseWorkResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.tickets.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	now := time.Now()
	if cmd.Pause {
		err = t.PauseWork(now)
	} else {
		err = t.ResumeWork(now)
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tickets.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket work pause changed",
		"ticket_id", t.ID(), "paused", t.WorkPaused(), "total_paused_minutes", t.TotalPausedMinutes())

	return &PauseWorkResult{
		TicketID:           t.ID(),
		WorkPaused:         t.WorkPaused(),
		TotalPausedMinutes: t.TotalPausedMinutes(),
	}, nil
}
