package mappers

import (
	"time"

	"github.com/atrium-inc/atrium/internal/domain/ticket"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// BatchToModel converts an import batch domain entity to a persistence model.
	BatchToModel(b *ticket.ImportBatch) *models.ImportBatchModel

	// BatchToDomain converts an import batch persistence model to a domain entity.
	BatchToDomain(model *models.ImportBatchModel) *ticket.ImportBatch
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                 t.ID(),
		Number:             t.Number(),
		Title:              t.Title(),
		Description:        t.Description(),
		CategoryCode:       t.CategoryCode(),
		SkillGroupID:       t.SkillGroupID(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		SiteID:             t.SiteID(),
		RaisedBy:           t.RaisedBy(),
		AssignedTo:         t.AssignedTo(),
		SLAHours:           t.SLAHours(),
		SLAStarted:         t.SLAStarted(),
		WorkPaused:         t.WorkPaused(),
		TotalPausedMinutes: t.TotalPausedMinutes(),
		IsVague:            t.IsVague(),
		IsInternal:         t.IsInternal(),
		FloorNumber:        t.FloorNumber(),
		Location:           t.Location(),
		ImportBatchID:      t.ImportBatchID(),
		Version:            t.Version(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}

	if t.AssignedAt() != nil {
		assigned := t.AssignedAt().UnixMilli()
		model.AssignedAt = &assigned
	}

	if t.SLADeadline() != nil {
		deadline := t.SLADeadline().UnixMilli()
		model.SLADeadline = &deadline
	}

	if t.WorkPausedAt() != nil {
		paused := t.WorkPausedAt().UnixMilli()
		model.WorkPausedAt = &paused
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, _ := vo.NewPriority(model.Priority)
	status, _ := vo.NewTicketStatus(model.Status)

	createdAt := ticketConvertMillisToTime(model.CreatedAt)
	updatedAt := ticketConvertMillisToTime(model.UpdatedAt)

	var assignedAt, slaDeadline, workPausedAt, closedAt *time.Time
	if model.AssignedAt != nil {
		t := ticketConvertMillisToTime(*model.AssignedAt)
		assignedAt = &t
	}
	if model.SLADeadline != nil {
		t := ticketConvertMillisToTime(*model.SLADeadline)
		slaDeadline = &t
	}
	if model.WorkPausedAt != nil {
		t := ticketConvertMillisToTime(*model.WorkPausedAt)
		workPausedAt = &t
	}
	if model.ClosedAt != nil {
		t := ticketConvertMillisToTime(*model.ClosedAt)
		closedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		model.CategoryCode,
		model.SkillGroupID,
		priority,
		status,
		model.SiteID,
		model.RaisedBy,
		model.AssignedTo,
		assignedAt,
		model.SLAHours,
		slaDeadline,
		model.SLAStarted,
		model.WorkPaused,
		workPausedAt,
		model.TotalPausedMinutes,
		model.IsVague,
		model.IsInternal,
		model.FloorNumber,
		model.Location,
		model.ImportBatchID,
		model.Version,
		createdAt,
		updatedAt,
		closedAt,
	)
}

// BatchToModel converts an import batch domain entity to a persistence model.
func (m *TicketMapperImpl) BatchToModel(b *ticket.ImportBatch) *models.ImportBatchModel {
	model := &models.ImportBatchModel{
		ID:        b.ID(),
		Filename:  b.Filename(),
		TotalRows: b.TotalRows(),
		ValidRows: b.ValidRows(),
		ErrorRows: b.ErrorRows(),
		Status:    string(b.Status()),
		CreatedAt: b.CreatedAt().UnixMilli(),
	}

	if b.CompletedAt() != nil {
		completed := b.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}

	return model
}

// BatchToDomain converts an import batch persistence model to a domain entity.
func (m *TicketMapperImpl) BatchToDomain(model *models.ImportBatchModel) *ticket.ImportBatch {
	var completedAt *time.Time
	if model.CompletedAt != nil {
		t := ticketConvertMillisToTime(*model.CompletedAt)
		completedAt = &t
	}

	return ticket.ReconstructImportBatch(
		model.ID,
		model.Filename,
		model.TotalRows,
		model.ValidRows,
		model.ErrorRows,
		ticket.BatchStatus(model.Status),
		ticketConvertMillisToTime(model.CreatedAt),
		completedAt,
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
