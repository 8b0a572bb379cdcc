package ticket

import (
	"strconv"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/shared/events"
)

const (
	EventTicketCreated    = "ticket.created"
	EventTicketAssigned   = "ticket.assigned"
	EventTicketWaitlisted = "ticket.waitlisted"
	EventTicketCompleted  = "ticket.completed"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID   uint
	Number     string
	Title      string
	SiteID     uint
	RaisedBy   uint
	AssignedTo *uint
	Status     string
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:  newBaseEvent(EventTicketCreated, t.ID()),
		TicketID:   t.ID(),
		Number:     t.Number(),
		Title:      t.Title(),
		SiteID:     t.SiteID(),
		RaisedBy:   t.RaisedBy(),
		AssignedTo: t.AssignedTo(),
		Status:     t.Status().String(),
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint
	Number     string
	SiteID     uint
	RaisedBy   uint
	AssigneeID uint
}

func NewTicketAssignedEvent(t *Ticket, assigneeID uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:  newBaseEvent(EventTicketAssigned, t.ID()),
		TicketID:   t.ID(),
		Number:     t.Number(),
		SiteID:     t.SiteID(),
		RaisedBy:   t.RaisedBy(),
		AssigneeID: assigneeID,
	}
}

type TicketWaitlistedEvent struct {
	events.BaseEvent
	TicketID uint
	Number   string
	SiteID   uint
	RaisedBy uint
}

func NewTicketWaitlistedEvent(t *Ticket) TicketWaitlistedEvent {
	return TicketWaitlistedEvent{
		BaseEvent: newBaseEvent(EventTicketWaitlisted, t.ID()),
		TicketID:  t.ID(),
		Number:    t.Number(),
		SiteID:    t.SiteID(),
		RaisedBy:  t.RaisedBy(),
	}
}

type TicketCompletedEvent struct {
	events.BaseEvent
	TicketID uint
	Number   string
	SiteID   uint
	RaisedBy uint
}

func NewTicketCompletedEvent(t *Ticket) TicketCompletedEvent {
	return TicketCompletedEvent{
		BaseEvent: newBaseEvent(EventTicketCompleted, t.ID()),
		TicketID:  t.ID(),
		Number:    t.Number(),
		SiteID:    t.SiteID(),
		RaisedBy:  t.RaisedBy(),
	}
}

func newBaseEvent(eventType string, ticketID uint) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatUint(uint64(ticketID), 10),
		EventType:   eventType,
		OccurredAt:  time.Now(),
		Version:     1,
	}
}
