package notification

import (
	"context"
	"errors"
)

// ErrEndpointGone is returned by PushTransport implementations when the push
// service reports the subscription expired or unsubscribed. The caller
// deactivates the endpoint instead of retrying.
var ErrEndpointGone = errors.New("push endpoint gone")

type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type PushEndpointRepository interface {
	Save(ctx context.Context, e *PushEndpoint) error
	Update(ctx context.Context, e *PushEndpoint) error
	// ListActiveByUser returns the user's active endpoints ordered by
	// updated_at descending, so fingerprint deduplication keeps the most
	// recently refreshed registration.
	ListActiveByUser(ctx context.Context, userID uint) ([]*PushEndpoint, error)
	GetByFingerprint(ctx context.Context, userID uint, fingerprint string) (*PushEndpoint, error)
	Deactivate(ctx context.Context, id uint) error
}

type DeliveryRecordRepository interface {
	Save(ctx context.Context, r *DeliveryRecord) error
	Update(ctx context.Context, r *DeliveryRecord) error
	ListByNotification(ctx context.Context, notificationID uint) ([]*DeliveryRecord, error)
}

// PushPayload is the wire content of one push message.
type PushPayload struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	DeepLink string `json:"deep_link,omitempty"`
	Type     string `json:"type"`
}

// PushTransport delivers a payload to one endpoint. Implementations map
// provider "subscription gone" responses to ErrEndpointGone and return all
// other failures as ordinary errors.
type PushTransport interface {
	Send(ctx context.Context, endpoint *PushEndpoint, payload PushPayload) error
}

// UserDirectory resolves display names for notification copy, e.g. the
// assignee name in an assignment announcement.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID uint) (string, error)
}
