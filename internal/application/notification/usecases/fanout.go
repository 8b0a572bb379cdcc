package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/atrium-inc/atrium/internal/domain/booking"
	"github.com/atrium-inc/atrium/internal/domain/notification"
	vo "github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	apperrors "github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type FanOutCommand struct {
	EventType string
	TicketID  uint
	BookingID uint
}

type FanOutResult struct {
	Recipients  int
	Dispatched  int
	Failed      int
	Deactivated int
	Skipped     bool
}

// FanOutUseCase turns one domain event into per-recipient notification rows
// and push deliveries. Fan-out is best effort throughout: a failure for one
// recipient or one endpoint is logged and never aborts the rest.
type FanOutUseCase struct {
	notifications notification.NotificationRepository
	endpoints     notification.PushEndpointRepository
	deliveries    notification.DeliveryRecordRepository
	transport     notification.PushTransport
	resolver      *RecipientResolver
	tickets       ticket.TicketRepository
	bookings      booking.BookingStore
	users         notification.UserDirectory
	cooldown      CooldownGuard
	logger        logger.Interface
}

func NewFanOutUseCase(
	notifications notification.NotificationRepository,
	endpoints notification.PushEndpointRepository,
	deliveries notification.DeliveryRecordRepository,
	transport notification.PushTransport,
	resolver *RecipientResolver,
	tickets ticket.TicketRepository,
	bookings booking.BookingStore,
	users notification.UserDirectory,
	cooldown CooldownGuard,
	logger logger.Interface,
) *FanOutUseCase {
	return &FanOutUseCase{
		notifications: notifications,
		endpoints:     endpoints,
		deliveries:    deliveries,
		transport:     transport,
		resolver:      resolver,
		tickets:       tickets,
		bookings:      bookings,
		users:         users,
		cooldown:      cooldown,
		logger:        logger,
	}
}

func (uc *FanOutUseCase) Execute(ctx context.Context, cmd FanOutCommand) (*FanOutResult, error) {
	eventType, err := vo.NewNotificationType(cmd.EventType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if eventType == vo.TypeRoomBooked {
		return uc.fanOutBooking(ctx, cmd.BookingID)
	}
	return uc.fanOutTicket(ctx, eventType, cmd.TicketID)
}

func (uc *FanOutUseCase) fanOutTicket(ctx context.Context, eventType vo.NotificationType, ticketID uint) (*FanOutResult, error) {
	if ticketID == 0 {
		return nil, apperrors.NewValidationError("ticket ID is required")
	}

	t, err := uc.tickets.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket for fan-out", "ticket_id", ticketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	if eventType == vo.TypeTicketOverdue && uc.cooldown != nil {
		allowed, err := uc.cooldown.ShouldNotify(ctx, fmt.Sprintf("ticket-overdue:%d", t.ID()))
		if err != nil {
			uc.logger.Warnw("overdue cooldown check failed, notifying anyway", "ticket_id", t.ID(), "error", err)
		} else if !allowed {
			uc.logger.Debugw("overdue notification suppressed by cooldown", "ticket_id", t.ID())
			return &FanOutResult{Skipped: true}, nil
		}
	}

	recipients, err := uc.resolver.ResolveTicketRecipients(ctx, eventType, t.SiteID(), t.RaisedBy(), t.AssignedTo())
	if err != nil {
		uc.logger.Errorw("failed to resolve recipients", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	assigneeName := uc.assigneeName(ctx, eventType, t.AssignedTo())
	deepLink := fmt.Sprintf("/tickets/%d", t.ID())

	result := &FanOutResult{Recipients: len(recipients)}
	for _, recipient := range recipients {
		title, message := ticketCopy(eventType, t, recipient.IsAssignee, assigneeName)

		n, err := notification.NewNotification(recipient.UserID, t.SiteID(), eventType, title, message, deepLink)
		if err != nil {
			uc.logger.Warnw("failed to build notification, skipping recipient",
				"user_id", recipient.UserID, "error", err)
			result.Failed++
			continue
		}
		n.LinkTicket(t.ID())

		uc.deliverToRecipient(ctx, n, result)
	}

	uc.logger.Infow("ticket fan-out completed",
		"ticket_id", t.ID(), "event_type", eventType.String(),
		"recipients", result.Recipients, "dispatched", result.Dispatched,
		"failed", result.Failed, "deactivated", result.Deactivated)

	return result, nil
}

func (uc *FanOutUseCase) fanOutBooking(ctx context.Context, bookingID uint) (*FanOutResult, error) {
	if bookingID == 0 {
		return nil, apperrors.NewValidationError("booking ID is required")
	}

	b, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		uc.logger.Errorw("failed to load booking for fan-out", "booking_id", bookingID, "error", err)
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NewNotFoundError("booking not found")
	}

	recipients, err := uc.resolver.ResolveBookingRecipients(ctx, b.SiteID)
	if err != nil {
		uc.logger.Errorw("failed to resolve booking recipients", "booking_id", bookingID, "error", err)
		return nil, err
	}

	title := fmt.Sprintf("Room %s booked", b.RoomName)
	message := fmt.Sprintf("%s is booked from %s", b.RoomName, b.StartsAt.Format("Jan 2 15:04"))
	deepLink := fmt.Sprintf("/bookings/%d", b.ID)

	result := &FanOutResult{Recipients: len(recipients)}
	for _, recipient := range recipients {
		n, err := notification.NewNotification(recipient.UserID, b.SiteID, vo.TypeRoomBooked, title, message, deepLink)
		if err != nil {
			uc.logger.Warnw("failed to build notification, skipping recipient",
				"user_id", recipient.UserID, "error", err)
			result.Failed++
			continue
		}
		n.LinkBooking(b.ID)

		uc.deliverToRecipient(ctx, n, result)
	}

	uc.logger.Infow("booking fan-out completed",
		"booking_id", b.ID, "recipients", result.Recipients, "dispatched", result.Dispatched)

	return result, nil
}

// deliverToRecipient persists the notification row and pushes it to the
// recipient's surviving endpoints. Endpoint iteration deduplicates by browser
// fingerprint keeping the most recently updated registration; endpoints
// without a fingerprint are always treated as unique.
func (uc *FanOutUseCase) deliverToRecipient(ctx context.Context, n *notification.Notification, result *FanOutResult) {
	if err := uc.notifications.Save(ctx, n); err != nil {
		uc.logger.Warnw("failed to save notification, skipping recipient",
			"user_id", n.UserID(), "error", err)
		result.Failed++
		return
	}

	endpoints, err := uc.endpoints.ListActiveByUser(ctx, n.UserID())
	if err != nil {
		uc.logger.Warnw("failed to list push endpoints, notification row kept",
			"user_id", n.UserID(), "error", err)
		return
	}

	seenFingerprints := make(map[string]bool)
	for _, endpoint := range endpoints {
		if fp := endpoint.BrowserFingerprint(); fp != "" {
			if seenFingerprints[fp] {
				continue
			}
			seenFingerprints[fp] = true
		}

		uc.dispatch(ctx, n, endpoint, result)
	}
}

// dispatch performs one delivery attempt with its own audit record. The
// record is created PENDING and always finalized before return.
func (uc *FanOutUseCase) dispatch(ctx context.Context, n *notification.Notification, endpoint *notification.PushEndpoint, result *FanOutResult) {
	record, err := notification.NewDeliveryRecord(n.ID(), endpoint.ID())
	if err != nil {
		uc.logger.Warnw("failed to create delivery record", "notification_id", n.ID(), "error", err)
		result.Failed++
		return
	}
	if err := uc.deliveries.Save(ctx, record); err != nil {
		uc.logger.Warnw("failed to save delivery record",
			"notification_id", n.ID(), "endpoint_id", endpoint.ID(), "error", err)
		result.Failed++
		return
	}

	payload := notification.PushPayload{
		Title:    n.Title(),
		Message:  n.Message(),
		DeepLink: n.DeepLink(),
		Type:     n.Type().String(),
	}

	sendErr := uc.transport.Send(ctx, endpoint, payload)
	if sendErr == nil {
		_ = record.MarkDelivered()
		result.Dispatched++
	} else {
		_ = record.MarkFailed(sendErr.Error())
		result.Failed++

		if errors.Is(sendErr, notification.ErrEndpointGone) {
			if err := uc.endpoints.Deactivate(ctx, endpoint.ID()); err != nil {
				uc.logger.Warnw("failed to deactivate dead endpoint",
					"endpoint_id", endpoint.ID(), "error", err)
			} else {
				result.Deactivated++
				uc.logger.Infow("push endpoint deactivated",
					"endpoint_id", endpoint.ID(), "user_id", n.UserID())
			}
		} else {
			uc.logger.Warnw("push delivery failed",
				"notification_id", n.ID(), "endpoint_id", endpoint.ID(), "error", sendErr)
		}
	}

	if err := uc.deliveries.Update(ctx, record); err != nil {
		uc.logger.Warnw("failed to finalize delivery record",
			"notification_id", n.ID(), "endpoint_id", endpoint.ID(), "error", err)
	}
}

func (uc *FanOutUseCase) assigneeName(ctx context.Context, eventType vo.NotificationType, assignedTo *uint) string {
	if eventType != vo.TypeTicketAssigned || assignedTo == nil || uc.users == nil {
		return ""
	}

	name, err := uc.users.DisplayName(ctx, *assignedTo)
	if err != nil || name == "" {
		uc.logger.Warnw("failed to resolve assignee name", "user_id", *assignedTo, "error", err)
		return "a team member"
	}
	return name
}

func ticketCopy(eventType vo.NotificationType, t *ticket.Ticket, isAssignee bool, assigneeName string) (string, string) {
	switch eventType {
	case vo.TypeTicketCreated:
		return fmt.Sprintf("New ticket %s", t.Number()), t.Title()
	case vo.TypeTicketWaitlisted:
		return fmt.Sprintf("Ticket %s needs a resolver", t.Number()), t.Title()
	case vo.TypeTicketAssigned:
		if isAssignee {
			return fmt.Sprintf("Ticket %s assigned to you", t.Number()), t.Title()
		}
		return fmt.Sprintf("Ticket %s assigned to %s", t.Number(), assigneeName), t.Title()
	case vo.TypeTicketCompleted:
		return fmt.Sprintf("Ticket %s resolved", t.Number()), t.Title()
	case vo.TypeTicketOverdue:
		return fmt.Sprintf("Ticket %s is overdue", t.Number()), t.Title()
	default:
		return t.Number(), t.Title()
	}
}
