package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
)

func makeNotification(id, userID uint, isRead bool) *notification.Notification {
	now := time.Now()
	return notification.ReconstructNotification(
		id, userID, 1, valueobjects.TypeTicketAssigned,
		"New ticket assigned", "Water leak in pantry", "/tickets/12",
		nil, nil, isRead, now, now,
	)
}

func TestMarkNotificationReadUseCase_Execute(t *testing.T) {
	updated := false
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return makeNotification(id, 8, false), nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			updated = true
			assert.True(t, n.IsRead())
			return nil
		},
		CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
			return 4, nil
		},
	}

	uc := NewMarkNotificationReadUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 25, UserID: 8})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, uint(25), result.NotificationID)
	assert.Equal(t, int64(4), result.UnreadCount)
}

func TestMarkNotificationReadUseCase_Execute_AlreadyRead(t *testing.T) {
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return makeNotification(id, 8, true), nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			t.Fatal("already-read notification should not be rewritten")
			return nil
		},
	}

	uc := NewMarkNotificationReadUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 25, UserID: 8})
	require.NoError(t, err)
}

func TestMarkNotificationReadUseCase_Execute_WrongOwner(t *testing.T) {
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return makeNotification(id, 99, false), nil
		},
	}

	uc := NewMarkNotificationReadUseCase(repo, &mockLogger{})
	_, err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 25, UserID: 8})
	assert.Error(t, err)
}

func TestListNotificationsUseCase_Execute(t *testing.T) {
	repo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error) {
			assert.Equal(t, uint(8), userID)
			assert.True(t, unreadOnly)
			assert.Equal(t, 10, limit)
			assert.Equal(t, 10, offset)
			return []*notification.Notification{makeNotification(1, 8, false)}, 1, nil
		},
		CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
			return 1, nil
		},
	}

	uc := NewListNotificationsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListNotificationsQuery{
		UserID:     8,
		UnreadOnly: true,
		Page:       2,
		PageSize:   10,
	})

	require.NoError(t, err)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, uint(1), result.Notifications[0].NotificationID)
	assert.Equal(t, "ticket_assigned", result.Notifications[0].Type)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, int64(1), result.UnreadCount)
}
