package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type ImportRow struct {
	Title       string
	Description string
	RaisedBy    uint
}

type ImportTicketsCommand struct {
	Filename    string
	SiteID      uint
	RequestedBy uint
	Rows        []ImportRow
}

type RowError struct {
	Row    int
	Reason string
}

type ImportTicketsResult struct {
	BatchID     string
	TotalRows   int
	ValidRows   int
	ErrorRows   int
	Assigned    int
	Waitlisted  int
	RowErrors   []RowError
	CompletedAt time.Time
}

const maxImportRows = 500

// ImportTicketsUseCase processes a CSV batch. Each row runs the normal intake
// pipeline independently, so one bad row never sinks the batch. After the
// first pass a second sequential pass walks the waitlisted rows in file order
// and retries assignment, which keeps early rows from being starved when the
// first pass exhausted the available resolvers mid-file.
type ImportTicketsUseCase struct {
	batches   ticket.ImportBatchRepository
	tickets   ticket.TicketRepository
	intake    IntakeTicketExecutor
	locator   ResolverLocator
	publisher events.EventPublisher
	logger    logger.Interface
}

func NewImportTicketsUseCase(
	batches ticket.ImportBatchRepository,
	tickets ticket.TicketRepository,
	intake IntakeTicketExecutor,
	locator ResolverLocator,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ImportTicketsUseCase {
	return &ImportTicketsUseCase{
		batches:   batches,
		tickets:   tickets,
		intake:    intake,
		locator:   locator,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *ImportTicketsUseCase) Execute(ctx context.Context, cmd ImportTicketsCommand) (*ImportTicketsResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid import command", "error", err)
		return nil, err
	}

	batch, err := ticket.NewImportBatch(cmd.Filename, len(cmd.Rows))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.batches.Save(ctx, batch); err != nil {
		uc.logger.Errorw("failed to save import batch", "filename", cmd.Filename, "error", err)
		return nil, err
	}

	uc.logger.Infow("import batch started",
		"batch_id", batch.ID(), "filename", cmd.Filename, "rows", len(cmd.Rows))

	result := &ImportTicketsResult{
		BatchID:   batch.ID(),
		TotalRows: len(cmd.Rows),
	}

	// First pass: every row through the intake pipeline, in file order.
	var waitlisted []uint
	for i, row := range cmd.Rows {
		rowResult, err := uc.intake.Execute(ctx, IntakeTicketCommand{
			Title:         row.Title,
			Description:   row.Description,
			SiteID:        cmd.SiteID,
			RaisedBy:      uc.rowRaisedBy(row, cmd.RequestedBy),
			ImportBatchID: batch.ID(),
		})
		if err != nil {
			result.ErrorRows++
			result.RowErrors = append(result.RowErrors, RowError{Row: i + 1, Reason: err.Error()})
			uc.logger.Warnw("import row rejected", "batch_id", batch.ID(), "row", i+1, "error", err)
			continue
		}

		result.ValidRows++
		if rowResult.AssignedTo != nil {
			result.Assigned++
		} else {
			waitlisted = append(waitlisted, rowResult.TicketID)
		}
	}

	// Second pass: retry waitlisted rows sequentially in file order. Each
	// retry commits on its own, so a failure here leaves the ticket safely
	// waitlisted.
	for _, ticketID := range waitlisted {
		if uc.retryAssignment(ctx, batch.ID(), ticketID) {
			result.Assigned++
		} else {
			result.Waitlisted++
		}
	}

	batch.Complete(result.ValidRows, result.ErrorRows)
	if err := uc.batches.Update(ctx, batch); err != nil {
		uc.logger.Errorw("failed to finalize import batch", "batch_id", batch.ID(), "error", err)
		return nil, err
	}
	if completedAt := batch.CompletedAt(); completedAt != nil {
		result.CompletedAt = *completedAt
	}

	uc.logger.Infow("import batch completed",
		"batch_id", batch.ID(),
		"valid_rows", result.ValidRows,
		"error_rows", result.ErrorRows,
		"assigned", result.Assigned,
		"waitlisted", result.Waitlisted,
	)

	return result, nil
}

func (uc *ImportTicketsUseCase) validateCommand(cmd ImportTicketsCommand) error {
	if len(cmd.Rows) == 0 {
		return errors.NewValidationError("import requires at least one row")
	}
	if len(cmd.Rows) > maxImportRows {
		return errors.NewValidationError(fmt.Sprintf("import exceeds maximum of %d rows", maxImportRows))
	}
	if cmd.SiteID == 0 {
		return errors.NewValidationError("site ID is required")
	}
	if cmd.RequestedBy == 0 {
		return errors.NewValidationError("requesting user ID is required")
	}
	return nil
}

// rowRaisedBy attributes the ticket to the reporter named in the row, falling
// back to the importing user when the row carries none.
func (uc *ImportTicketsUseCase) rowRaisedBy(row ImportRow, requestedBy uint) uint {
	if row.RaisedBy != 0 {
		return row.RaisedBy
	}
	return requestedBy
}

func (uc *ImportTicketsUseCase) retryAssignment(ctx context.Context, batchID string, ticketID uint) bool {
	t, err := uc.tickets.GetByID(ctx, ticketID)
	if err != nil || t == nil {
		uc.logger.Warnw("failed to reload ticket for assignment retry",
			"batch_id", batchID, "ticket_id", ticketID, "error", err)
		return false
	}
	if !t.Status().IsWaitlist() || t.SkillGroupID() == nil {
		return false
	}

	resolverID := uc.locator.Locate(ctx, *t.SkillGroupID(), t.SiteID())
	if resolverID == nil {
		return false
	}

	if err := t.Assign(*resolverID, time.Now()); err != nil {
		uc.logger.Warnw("assignment retry rejected by ticket state",
			"batch_id", batchID, "ticket_id", ticketID, "error", err)
		return false
	}
	if err := uc.tickets.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to persist assignment retry",
			"batch_id", batchID, "ticket_id", ticketID, "error", err)
		return false
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ticket.NewTicketAssignedEvent(t, *resolverID)); err != nil {
			uc.logger.Warnw("failed to publish assignment event",
				"ticket_id", ticketID, "error", err)
		}
	}
	return true
}
