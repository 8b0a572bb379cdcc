package usecases

import (
	"context"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/shared/errors"
	"github.com/atrium-inc/atrium/internal/shared/logger"
	"github.com/atrium-inc/atrium/internal/shared/utils"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type NotificationSummary struct {
	NotificationID   uint
	Type             string
	Title            string
	Message          string
	DeepLink         string
	RelatedTicketID  *uint
	RelatedBookingID *uint
	IsRead           bool
	CreatedAt        time.Time
}

type ListNotificationsResult struct {
	Notifications []NotificationSummary
	Total         int64
	UnreadCount   int64
	Page          int
	PageSize      int
}

type ListNotificationsUseCase struct {
	notifications notification.NotificationRepository
	logger        logger.Interface
}

func NewListNotificationsUseCase(notifications notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notifications: notifications, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	page, pageSize := pagination.Page, pagination.PageSize

	rows, total, err := uc.notifications.ListByUser(ctx, query.UserID, query.UnreadOnly, pageSize, (page-1)*pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, err
	}

	unread, err := uc.notifications.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Warnw("failed to count unread notifications", "user_id", query.UserID, "error", err)
	}

	summaries := make([]NotificationSummary, 0, len(rows))
	for _, n := range rows {
		summaries = append(summaries, NotificationSummary{
			NotificationID:   n.ID(),
			Type:             n.Type().String(),
			Title:            n.Title(),
			Message:          n.Message(),
			DeepLink:         n.DeepLink(),
			RelatedTicketID:  n.RelatedTicketID(),
			RelatedBookingID: n.RelatedBookingID(),
			IsRead:           n.IsRead(),
			CreatedAt:        n.CreatedAt(),
		})
	}

	return &ListNotificationsResult{
		Notifications: summaries,
		Total:         total,
		UnreadCount:   unread,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}
