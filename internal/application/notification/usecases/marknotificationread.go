package usecases

import (
	"context"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkNotificationReadResult struct {
	NotificationID uint
	UnreadCount    int64
}

type MarkNotificationReadUseCase struct {
	notifications notification.NotificationRepository
	logger        logger.Interface
}

func NewMarkNotificationReadUseCase(notifications notification.NotificationRepository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notifications: notifications, logger: logger}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*MarkNotificationReadResult, error) {
	if cmd.NotificationID == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	n, err := uc.notifications.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		uc.logger.Errorw("failed to load notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, err
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}
	if n.UserID() != cmd.UserID {
		return nil, errors.NewNotFoundError("notification not found")
	}

	if !n.IsRead() {
		n.MarkRead()
		if err := uc.notifications.Update(ctx, n); err != nil {
			uc.logger.Errorw("failed to mark notification read", "notification_id", n.ID(), "error", err)
			return nil, err
		}
	}

	unread, err := uc.notifications.CountUnread(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Warnw("failed to count unread notifications", "user_id", cmd.UserID, "error", err)
		unread = 0
	}

	return &MarkNotificationReadResult{
		NotificationID: n.ID(),
		UnreadCount:    unread,
	}, nil
}
