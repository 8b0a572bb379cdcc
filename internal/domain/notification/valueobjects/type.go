package valueobjects

import "fmt"

// NotificationType names the domain event a notification row was fanned out
// from. One row exists per (event, recipient).
type NotificationType string

const (
	TypeTicketCreated    NotificationType = "ticket_created"
	TypeTicketWaitlisted NotificationType = "ticket_waitlisted"
	TypeTicketAssigned   NotificationType = "ticket_assigned"
	TypeTicketCompleted  NotificationType = "ticket_completed"
	TypeTicketOverdue    NotificationType = "ticket_overdue"
	TypeRoomBooked       NotificationType = "room_booked"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeTicketCreated:    true,
	TypeTicketWaitlisted: true,
	TypeTicketAssigned:   true,
	TypeTicketCompleted:  true,
	TypeTicketOverdue:    true,
	TypeRoomBooked:       true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// IsTicketEvent reports whether the type fans out to the full ticket
// audience rather than the booking or admin-only audiences.
func (t NotificationType) IsTicketEvent() bool {
	switch t {
	case TypeTicketCreated, TypeTicketWaitlisted, TypeTicketAssigned:
		return true
	}
	return false
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
