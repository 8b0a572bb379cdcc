package usecases

import (
	"context"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type GetSLAProgressQuery struct {
	TicketID uint
	// Now lets callers pin the evaluation instant; zero means time.Now().
	Now time.Time
}

type SLAProgressResult struct {
	TicketID         uint
	Number           string
	SLAStarted       bool
	WorkPaused       bool
	SLAHours         int
	Deadline         *time.Time
	RemainingMinutes int
	Progress         float64
	Display          string
	Overdue          bool
}

// GetSLAProgressUseCase evaluates the SLA clock for one ticket at a point in
// time. Read-only; all arithmetic lives in the domain layer.
type GetSLAProgressUseCase struct {
	tickets ticket.TicketRepository
	logger  logger.Interface
}

func NewGetSLAProgressUseCase(tickets ticket.TicketRepository, logger logger.Interface) *GetSLAProgressUseCase {
	return &GetSLAProgressUseCase{tickets: tickets, logger: logger}
}

func (uc *GetSLAProgressUseCase) Execute(ctx context.Context, query GetSLAProgressQuery) (*SLAProgressResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.tickets.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	result := &SLAProgressResult{
		TicketID:   t.ID(),
		Number:     t.Number(),
		SLAStarted: t.SLAStarted(),
		WorkPaused: t.WorkPaused(),
		SLAHours:   t.SLAHours(),
		Deadline:   t.SLADeadline(),
	}

	if !t.SLAStarted() || t.SLADeadline() == nil || t.AssignedAt() == nil {
		result.Display = "SLA not started"
		return result, nil
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = t.EffectiveNow(now)

	remaining := ticket.Remaining(now, *t.SLADeadline(), t.TotalPausedMinutes())
	result.RemainingMinutes = int(remaining.Minutes())
	result.Progress = ticket.Progress(now, *t.AssignedAt(), *t.SLADeadline(), t.TotalPausedMinutes())
	result.Display = ticket.FormatRemaining(remaining)
	result.Overdue = remaining < 0

	return result, nil
}
