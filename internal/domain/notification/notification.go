// Package notification holds the in-app notification entity, push endpoint
// registrations, and the append-only delivery audit trail.
package notification

import (
	"fmt"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
)

// Notification is a single in-app notification row for one recipient.
// Fan-out creates one Notification per recipient user, independent of how
// many push endpoints that user has registered.
type Notification struct {
	id               uint
	userID           uint
	siteID           uint
	notificationType valueobjects.NotificationType
	title            string
	message          string
	deepLink         string
	relatedTicketID  *uint
	relatedBookingID *uint
	isRead           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewNotification(userID, siteID uint, nType valueobjects.NotificationType, title, message, deepLink string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if !nType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", nType)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	now := time.Now()
	return &Notification{
		userID:           userID,
		siteID:           siteID,
		notificationType: nType,
		title:            title,
		message:          message,
		deepLink:         deepLink,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructNotification rebuilds a Notification from persisted state.
func ReconstructNotification(
	id uint,
	userID uint,
	siteID uint,
	nType valueobjects.NotificationType,
	title string,
	message string,
	deepLink string,
	relatedTicketID *uint,
	relatedBookingID *uint,
	isRead bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Notification {
	return &Notification{
		id:               id,
		userID:           userID,
		siteID:           siteID,
		notificationType: nType,
		title:            title,
		message:          message,
		deepLink:         deepLink,
		relatedTicketID:  relatedTicketID,
		relatedBookingID: relatedBookingID,
		isRead:           isRead,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (n *Notification) ID() uint                                        { return n.id }
func (n *Notification) UserID() uint                                    { return n.userID }
func (n *Notification) SiteID() uint                                    { return n.siteID }
func (n *Notification) Type() valueobjects.NotificationType             { return n.notificationType }
func (n *Notification) Title() string                                   { return n.title }
func (n *Notification) Message() string                                 { return n.message }
func (n *Notification) DeepLink() string                                { return n.deepLink }
func (n *Notification) RelatedTicketID() *uint                          { return n.relatedTicketID }
func (n *Notification) RelatedBookingID() *uint                         { return n.relatedBookingID }
func (n *Notification) IsRead() bool                                    { return n.isRead }
func (n *Notification) CreatedAt() time.Time                            { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time                            { return n.updatedAt }

func (n *Notification) SetID(id uint) { n.id = id }

func (n *Notification) LinkTicket(ticketID uint) {
	n.relatedTicketID = &ticketID
	n.updatedAt = time.Now()
}

func (n *Notification) LinkBooking(bookingID uint) {
	n.relatedBookingID = &bookingID
	n.updatedAt = time.Now()
}

// MarkRead is idempotent: marking an already-read notification is a no-op.
func (n *Notification) MarkRead() {
	if n.isRead {
		return
	}
	n.isRead = true
	n.updatedAt = time.Now()
}
