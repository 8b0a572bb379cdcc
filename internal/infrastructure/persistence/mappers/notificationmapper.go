package mappers

import (
	"time"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	vo "github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between notification domain
// entities and persistence models.
type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) *notification.Notification

	EndpointToModel(e *notification.PushEndpoint) *models.PushEndpointModel
	EndpointToDomain(model *models.PushEndpointModel) *notification.PushEndpoint

	DeliveryToModel(r *notification.DeliveryRecord) *models.DeliveryRecordModel
	DeliveryToDomain(model *models.DeliveryRecordModel) *notification.DeliveryRecord
}

// NotificationMapperImpl is the concrete implementation of NotificationMapper.
type NotificationMapperImpl struct{}

// NewNotificationMapper creates a new NotificationMapper.
func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:               n.ID(),
		UserID:           n.UserID(),
		SiteID:           n.SiteID(),
		Type:             n.Type().String(),
		Title:            n.Title(),
		Message:          n.Message(),
		DeepLink:         n.DeepLink(),
		RelatedTicketID:  n.RelatedTicketID(),
		RelatedBookingID: n.RelatedBookingID(),
		IsRead:           n.IsRead(),
		CreatedAt:        n.CreatedAt().UnixMilli(),
		UpdatedAt:        n.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) *notification.Notification {
	nType, _ := vo.NewNotificationType(model.Type)

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.SiteID,
		nType,
		model.Title,
		model.Message,
		model.DeepLink,
		model.RelatedTicketID,
		model.RelatedBookingID,
		model.IsRead,
		notifyConvertMillisToTime(model.CreatedAt),
		notifyConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *NotificationMapperImpl) EndpointToModel(e *notification.PushEndpoint) *models.PushEndpointModel {
	return &models.PushEndpointModel{
		ID:                 e.ID(),
		UserID:             e.UserID(),
		Token:              e.Token(),
		EndpointURL:        e.EndpointURL(),
		P256dhKey:          e.P256dhKey(),
		AuthKey:            e.AuthKey(),
		BrowserFingerprint: e.BrowserFingerprint(),
		IsActive:           e.IsActive(),
		CreatedAt:          e.CreatedAt().UnixMilli(),
		UpdatedAt:          e.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) EndpointToDomain(model *models.PushEndpointModel) *notification.PushEndpoint {
	return notification.ReconstructPushEndpoint(
		model.ID,
		model.UserID,
		model.Token,
		model.EndpointURL,
		model.P256dhKey,
		model.AuthKey,
		model.BrowserFingerprint,
		model.IsActive,
		notifyConvertMillisToTime(model.CreatedAt),
		notifyConvertMillisToTime(model.UpdatedAt),
	)
}

func (m *NotificationMapperImpl) DeliveryToModel(r *notification.DeliveryRecord) *models.DeliveryRecordModel {
	return &models.DeliveryRecordModel{
		ID:             r.ID(),
		NotificationID: r.NotificationID(),
		EndpointID:     r.EndpointID(),
		Status:         r.Status().String(),
		FailureReason:  r.FailureReason(),
		CreatedAt:      r.CreatedAt().UnixMilli(),
		UpdatedAt:      r.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) DeliveryToDomain(model *models.DeliveryRecordModel) *notification.DeliveryRecord {
	status, _ := vo.NewDeliveryStatus(model.Status)

	return notification.ReconstructDeliveryRecord(
		model.ID,
		model.NotificationID,
		model.EndpointID,
		status,
		model.FailureReason,
		notifyConvertMillisToTime(model.CreatedAt),
		notifyConvertMillisToTime(model.UpdatedAt),
	)
}

func notifyConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
