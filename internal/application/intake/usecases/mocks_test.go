package usecases

import (
	"context"

	"github.com/atrium-inc/atrium/internal/domain/catalog"
	"github.com/atrium-inc/atrium/internal/domain/shared/events"
	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc         func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc  func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetByBatchIDFunc func(ctx context.Context, batchID string) ([]*ticket.Ticket, error)
	GetOverdueFunc   func(ctx context.Context, siteID uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetByBatchID(ctx context.Context, batchID string) ([]*ticket.Ticket, error) {
	if m.GetByBatchIDFunc != nil {
		return m.GetByBatchIDFunc(ctx, batchID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetOverdue(ctx context.Context, siteID uint) ([]*ticket.Ticket, error) {
	if m.GetOverdueFunc != nil {
		return m.GetOverdueFunc(ctx, siteID)
	}
	return nil, nil
}

type mockImportBatchRepository struct {
	SaveFunc    func(ctx context.Context, b *ticket.ImportBatch) error
	UpdateFunc  func(ctx context.Context, b *ticket.ImportBatch) error
	GetByIDFunc func(ctx context.Context, batchID string) (*ticket.ImportBatch, error)
}

func (m *mockImportBatchRepository) Save(ctx context.Context, b *ticket.ImportBatch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockImportBatchRepository) Update(ctx context.Context, b *ticket.ImportBatch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockImportBatchRepository) GetByID(ctx context.Context, batchID string) (*ticket.ImportBatch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, batchID)
	}
	return nil, nil
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

type mockResolverLocator struct {
	LocateFunc func(ctx context.Context, skillGroupID, siteID uint) *uint
}

func (m *mockResolverLocator) Locate(ctx context.Context, skillGroupID, siteID uint) *uint {
	if m.LocateFunc != nil {
		return m.LocateFunc(ctx, skillGroupID, siteID)
	}
	return nil
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
	SetAvailableFunc  func(ctx context.Context, userID, skillGroupID, siteID uint, available bool) error
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
	if m.SetAvailableFunc != nil {
		return m.SetAvailableFunc(ctx, userID, skillGroupID, siteID, available)
	}
	return nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
	Published      []events.DomainEvent
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TKT-1700000000000-Ab3d", nil
}

type mockIntakeExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd IntakeTicketCommand) (*IntakeTicketResult, error)
}

func (m *mockIntakeExecutor) Execute(ctx context.Context, cmd IntakeTicketCommand) (*IntakeTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
