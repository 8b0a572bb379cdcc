package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/catalog"
	"github.com/atrium-inc/atrium/internal/domain/intake"
	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type IntakeTicketCommand struct {
	Title         string
	Description   string
	SiteID        uint
	RaisedBy      uint
	IsInternal    bool
	ImportBatchID string
}

type IntakeTicketResult struct {
	TicketID     uint
	Number       string
	Status       string
	CategoryCode string
	Confidence   int
	IsVague      bool
	AssignedTo   *uint
	SLADeadline  *time.Time
	FloorNumber  *int
	Location     string
	CreatedAt    time.Time
}

// IntakeTicketUseCase runs the full intake pipeline: classify the report,
// extract location hints, route to a skill group, and either auto-assign a
// resolver or park the ticket on the waitlist. Every ticket leaves here
// persisted in assigned or waitlist status; intake never rejects a report for
// being vague.
type IntakeTicketUseCase struct {
	tickets          ticket.TicketRepository
	numbers          ticket.NumberGenerator
	refData          catalog.ReferenceDataStore
	locator          ResolverLocator
	classifier       *intake.Classifier
	extractor        *intake.LocationExtractor
	publisher        events.EventPublisher
	fallbackSLAHours int
	logger           logger.Interface
}

func NewIntakeTicketUseCase(
	tickets ticket.TicketRepository,
	numbers ticket.NumberGenerator,
	refData catalog.ReferenceDataStore,
	locator ResolverLocator,
	classifier *intake.Classifier,
	extractor *intake.LocationExtractor,
	publisher events.EventPublisher,
	fallbackSLAHours int,
	logger logger.Interface,
) *IntakeTicketUseCase {
	return &IntakeTicketUseCase{
		tickets:          tickets,
		numbers:          numbers,
		refData:          refData,
		locator:          locator,
		classifier:       classifier,
		extractor:        extractor,
		publisher:        publisher,
		fallbackSLAHours: fallbackSLAHours,
		logger:           logger,
	}
}

func (uc *IntakeTicketUseCase) Execute(ctx context.Context, cmd IntakeTicketCommand) (*IntakeTicketResult, error) {
	uc.logger.Infow("executing ticket intake", "site_id", cmd.SiteID, "raised_by", cmd.RaisedBy)

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.SiteID, cmd.RaisedBy)
	if err != nil {
		uc.logger.Errorw("invalid intake command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	newTicket.TagImportBatch(cmd.ImportBatchID)

	text := strings.TrimSpace(cmd.Title + " " + cmd.Description)
	cls := uc.classifier.Classify(text)

	loc := uc.extractor.Extract(text)
	newTicket.AttachLocation(loc.FloorNumber, loc.Name)

	skillGroupID, priority, slaHours := uc.route(ctx, text, cls)
	if err := newTicket.Classify(cls.CategoryCode, skillGroupID, priority, slaHours, cls.IsVague); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	assigned := false
	if skillGroupID != nil {
		if resolverID := uc.locator.Locate(ctx, *skillGroupID, cmd.SiteID); resolverID != nil {
			if err := newTicket.Assign(*resolverID, time.Now()); err != nil {
				return nil, errors.NewInternalError(err.Error())
			}
			assigned = true
		}
	}
	if !assigned {
		if err := newTicket.Waitlist(); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if err := uc.tickets.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "number", number, "error", err)
		return nil, err
	}

	uc.publish(newTicket, assigned)

	uc.logger.Infow("ticket intake completed",
		"ticket_id", newTicket.ID(),
		"number", newTicket.Number(),
		"status", newTicket.Status().String(),
		"category", cls.CategoryCode,
		"confidence", cls.Confidence,
		"vague", cls.IsVague,
	)

	return &IntakeTicketResult{
		TicketID:     newTicket.ID(),
		Number:       newTicket.Number(),
		Status:       newTicket.Status().String(),
		CategoryCode: cls.CategoryCode,
		Confidence:   cls.Confidence,
		IsVague:      cls.IsVague,
		AssignedTo:   newTicket.AssignedTo(),
		SLADeadline:  newTicket.SLADeadline(),
		FloorNumber:  newTicket.FloorNumber(),
		Location:     newTicket.Location(),
		CreatedAt:    newTicket.CreatedAt(),
	}, nil
}

// route resolves the skill group, priority, and SLA window for the report.
// Confident classifications use category reference data; vague or unresolvable
// reports drop to the coarse department fallback with the configured default
// SLA. A nil skill group means nobody can take the ticket and it waitlists.
func (uc *IntakeTicketUseCase) route(ctx context.Context, text string, cls intake.Classification) (*uint, vo.Priority, int) {
	if !cls.IsVague && cls.CategoryCode != "" {
		category, err := uc.refData.CategoryByCode(ctx, cls.CategoryCode)
		if err != nil {
			uc.logger.Warnw("category lookup failed, using department fallback",
				"category", cls.CategoryCode, "error", err)
		} else if category != nil {
			sgID := category.SkillGroupID
			return &sgID, category.DefaultPriority, category.SLAHours
		} else {
			uc.logger.Warnw("classified category missing from reference data, using department fallback",
				"category", cls.CategoryCode)
		}
	}

	department := catalog.FallbackDepartment(text)
	group, err := uc.refData.SkillGroupByCode(ctx, string(department))
	if err != nil || group == nil {
		uc.logger.Warnw("fallback skill group unavailable, ticket will waitlist",
			"department", string(department), "error", err)
		return nil, vo.PriorityMedium, uc.fallbackSLAHours
	}
	sgID := group.ID
	return &sgID, vo.PriorityMedium, uc.fallbackSLAHours
}

func (uc *IntakeTicketUseCase) publish(t *ticket.Ticket, assigned bool) {
	if uc.publisher == nil {
		return
	}

	domainEvents := []events.DomainEvent{ticket.NewTicketCreatedEvent(t)}
	if assigned && t.AssignedTo() != nil {
		domainEvents = append(domainEvents, ticket.NewTicketAssignedEvent(t, *t.AssignedTo()))
	} else {
		domainEvents = append(domainEvents, ticket.NewTicketWaitlistedEvent(t))
	}

	if err := uc.publisher.PublishAll(domainEvents); err != nil {
		// Delivery is best effort; the ticket is already committed.
		uc.logger.Warnw("failed to publish ticket events", "ticket_id", t.ID(), "error", err)
	}
}
