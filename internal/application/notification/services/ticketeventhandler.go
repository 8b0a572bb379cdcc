// Package services wires domain events into notification fan-out.
package services

import (
	"context"
	"strconv"

	"github.com/atrium-inc/atrium/internal/application/notification/usecases"
	"github.com/atrium-inc/atrium/internal/domain/booking"
	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	vo "github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/goroutine"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// eventTypeMapping routes dispatcher event types to notification types.
var eventTypeMapping = map[string]vo.NotificationType{
	ticket.EventTicketCreated:    vo.TypeTicketCreated,
	ticket.EventTicketWaitlisted: vo.TypeTicketWaitlisted,
	ticket.EventTicketAssigned:   vo.TypeTicketAssigned,
	ticket.EventTicketCompleted:  vo.TypeTicketCompleted,
	booking.EventRoomBooked:      vo.TypeRoomBooked,
}

// TicketEventHandler subscribes to ticket and booking domain events and runs
// notification fan-out for each. Fan-out is fire-and-forget from the
// publisher's perspective: failures are logged here, never propagated back to
// the operation that raised the event.
type TicketEventHandler struct {
	fanOut usecases.FanOutExecutor
	logger logger.Interface
}

func NewTicketEventHandler(fanOut usecases.FanOutExecutor, logger logger.Interface) *TicketEventHandler {
	return &TicketEventHandler{fanOut: fanOut, logger: logger}
}

// Register subscribes the handler to every event type it fans out.
func (h *TicketEventHandler) Register(dispatcher events.EventSubscriber) error {
	for eventType := range eventTypeMapping {
		if err := dispatcher.Subscribe(eventType, h); err != nil {
			return err
		}
	}
	return nil
}

func (h *TicketEventHandler) CanHandle(eventType string) bool {
	_, ok := eventTypeMapping[eventType]
	return ok
}

func (h *TicketEventHandler) Handle(event events.DomainEvent) error {
	notificationType, ok := eventTypeMapping[event.GetEventType()]
	if !ok {
		return nil
	}

	aggregateID, err := strconv.ParseUint(event.GetAggregateID(), 10, 64)
	if err != nil {
		h.logger.Warnw("event carries non-numeric aggregate id, skipping fan-out",
			"event_type", event.GetEventType(), "aggregate_id", event.GetAggregateID())
		return nil
	}

	cmd := usecases.FanOutCommand{EventType: notificationType.String()}
	if notificationType == vo.TypeRoomBooked {
		cmd.BookingID = uint(aggregateID)
	} else {
		cmd.TicketID = uint(aggregateID)
	}

	goroutine.SafeGo(h.logger, "notification-fanout", func() {
		if _, err := h.fanOut.Execute(context.Background(), cmd); err != nil {
			h.logger.Warnw("notification fan-out failed",
				"event_type", event.GetEventType(), "aggregate_id", event.GetAggregateID(), "error", err)
		}
	})

	return nil
}
