package usecases

import (
	"context"

	"github.com/atrium-inc/atrium/internal/domain/booking"
	"github.com/atrium-inc/atrium/internal/domain/catalog"
	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc        func(ctx context.Context, n *notification.Notification) error
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc     func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserFunc  func(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)

	saved  []*notification.Notification
	nextID uint
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	m.nextID++
	n.SetID(m.nextID)
	m.saved = append(m.saved, n)
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, unreadOnly, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

type mockPushEndpointRepository struct {
	SaveFunc             func(ctx context.Context, e *notification.PushEndpoint) error
	UpdateFunc           func(ctx context.Context, e *notification.PushEndpoint) error
	ListActiveByUserFunc func(ctx context.Context, userID uint) ([]*notification.PushEndpoint, error)
	GetByFingerprintFunc func(ctx context.Context, userID uint, fingerprint string) (*notification.PushEndpoint, error)
	DeactivateFunc       func(ctx context.Context, id uint) error

	deactivated []uint
}

func (m *mockPushEndpointRepository) Save(ctx context.Context, e *notification.PushEndpoint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockPushEndpointRepository) Update(ctx context.Context, e *notification.PushEndpoint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockPushEndpointRepository) ListActiveByUser(ctx context.Context, userID uint) ([]*notification.PushEndpoint, error) {
	if m.ListActiveByUserFunc != nil {
		return m.ListActiveByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPushEndpointRepository) GetByFingerprint(ctx context.Context, userID uint, fingerprint string) (*notification.PushEndpoint, error) {
	if m.GetByFingerprintFunc != nil {
		return m.GetByFingerprintFunc(ctx, userID, fingerprint)
	}
	return nil, nil
}

func (m *mockPushEndpointRepository) Deactivate(ctx context.Context, id uint) error {
	m.deactivated = append(m.deactivated, id)
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

type mockDeliveryRecordRepository struct {
	SaveFunc   func(ctx context.Context, r *notification.DeliveryRecord) error
	UpdateFunc func(ctx context.Context, r *notification.DeliveryRecord) error

	records []*notification.DeliveryRecord
	nextID  uint
}

func (m *mockDeliveryRecordRepository) Save(ctx context.Context, r *notification.DeliveryRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	m.nextID++
	r.SetID(m.nextID)
	m.records = append(m.records, r)
	return nil
}

func (m *mockDeliveryRecordRepository) Update(ctx context.Context, r *notification.DeliveryRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockDeliveryRecordRepository) ListByNotification(ctx context.Context, notificationID uint) ([]*notification.DeliveryRecord, error) {
	return m.records, nil
}

type mockPushTransport struct {
	SendFunc func(ctx context.Context, endpoint *notification.PushEndpoint, payload notification.PushPayload) error

	sentTo []uint
}

func (m *mockPushTransport) Send(ctx context.Context, endpoint *notification.PushEndpoint, payload notification.PushPayload) error {
	m.sentTo = append(m.sentTo, endpoint.ID())
	if m.SendFunc != nil {
		return m.SendFunc(ctx, endpoint, payload)
	}
	return nil
}

type mockUserDirectory struct {
	DisplayNameFunc func(ctx context.Context, userID uint) (string, error)
}

func (m *mockUserDirectory) DisplayName(ctx context.Context, userID uint) (string, error) {
	if m.DisplayNameFunc != nil {
		return m.DisplayNameFunc(ctx, userID)
	}
	return "Alex Rivera", nil
}

type mockCooldownGuard struct {
	ShouldNotifyFunc func(ctx context.Context, key string) (bool, error)
}

func (m *mockCooldownGuard) ShouldNotify(ctx context.Context, key string) (bool, error) {
	if m.ShouldNotifyFunc != nil {
		return m.ShouldNotifyFunc(ctx, key)
	}
	return true, nil
}

type mockMembershipStore struct {
	ActiveMemberFunc      func(ctx context.Context, userID, siteID uint) (*staffing.Membership, error)
	ListActiveMembersFunc func(ctx context.Context, siteID uint) ([]staffing.Membership, error)
}

func (m *mockMembershipStore) ActiveMember(ctx context.Context, userID, siteID uint) (*staffing.Membership, error) {
	if m.ActiveMemberFunc != nil {
		return m.ActiveMemberFunc(ctx, userID, siteID)
	}
	return nil, nil
}

func (m *mockMembershipStore) ListActiveMembers(ctx context.Context, siteID uint) ([]staffing.Membership, error) {
	if m.ListActiveMembersFunc != nil {
		return m.ListActiveMembersFunc(ctx, siteID)
	}
	return nil, nil
}

type mockAvailabilityStore struct {
	FindAvailableFunc func(ctx context.Context, skillGroupID, siteID uint) ([]uint, error)
	HasSkillGroupFunc func(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error)
}

func (m *mockAvailabilityStore) FindAvailable(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
	if m.FindAvailableFunc != nil {
		return m.FindAvailableFunc(ctx, skillGroupID, siteID)
	}
	return nil, nil
}

func (m *mockAvailabilityStore) HasSkillGroup(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error) {
	if m.HasSkillGroupFunc != nil {
		return m.HasSkillGroupFunc(ctx, userID, skillGroupID, siteID)
	}
	return false, nil
}

func (m *mockAvailabilityStore) SetAvailable(ctx context.Context, userID, skillGroupID, siteID uint, available bool) error {
	return nil
}

type mockReferenceDataStore struct {
	CategoryByCodeFunc   func(ctx context.Context, code string) (*catalog.Category, error)
	SkillGroupByCodeFunc func(ctx context.Context, code string) (*catalog.SkillGroup, error)
}

func (m *mockReferenceDataStore) CategoryByCode(ctx context.Context, code string) (*catalog.Category, error) {
	if m.CategoryByCodeFunc != nil {
		return m.CategoryByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockReferenceDataStore) SkillGroupByCode(ctx context.Context, code string) (*catalog.SkillGroup, error) {
	if m.SkillGroupByCodeFunc != nil {
		return m.SkillGroupByCodeFunc(ctx, code)
	}
	return nil, nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) GetByBatchID(ctx context.Context, batchID string) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) GetOverdue(ctx context.Context, siteID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

type mockBookingStore struct {
	GetByIDFunc func(ctx context.Context, bookingID uint) (*booking.RoomBooking, error)
}

func (m *mockBookingStore) GetByID(ctx context.Context, bookingID uint) (*booking.RoomBooking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, bookingID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
