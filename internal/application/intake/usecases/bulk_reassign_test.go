package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/domain/ticket"
)

func TestBulkReassignUseCase_Execute_SweepsWaitlistInOrder(t *testing.T) {
	listed := []*ticket.Ticket{
		makeWaitlistedTicket(t, 201, 3),
		makeWaitlistedTicket(t, 202, 3),
		makeWaitlistedTicket(t, 203, 3),
	}
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, "waitlist", filter.Status.String())
			require.NotNil(t, filter.SiteID)
			assert.Equal(t, uint(10), *filter.SiteID)
			return listed, int64(len(listed)), nil
		},
	}

	// One resolver left: only the first ticket in the sweep gets it.
	var located []uint
	resolver := uint(7)
	remaining := 1
	locator := &mockResolverLocator{
		LocateFunc: func(ctx context.Context, skillGroupID, siteID uint) *uint {
			located = append(located, skillGroupID)
			if remaining == 0 {
				return nil
			}
			remaining--
			return &resolver
		},
	}
	publisher := &mockEventPublisher{}

	uc := NewBulkReassignUseCase(repo, locator, publisher, &mockLogger{})
	result, err := uc.Execute(context.Background(), BulkReassignCommand{SiteID: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 1, result.Assigned)
	assert.Equal(t, []uint{202, 203}, result.StillWaitlisted)
	assert.Len(t, located, 3)
	require.Len(t, publisher.Published, 1)
	assert.Equal(t, ticket.EventTicketAssigned, publisher.Published[0].GetEventType())
}

func TestBulkReassignUseCase_Execute_ExplicitTicketSet(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeWaitlistedTicket(t, ticketID, 3), nil
		},
	}
	resolver := uint(9)
	locator := &mockResolverLocator{
		LocateFunc: func(ctx context.Context, skillGroupID, siteID uint) *uint {
			return &resolver
		},
	}

	uc := NewBulkReassignUseCase(repo, locator, nil, &mockLogger{})
	result, err := uc.Execute(context.Background(), BulkReassignCommand{SiteID: 10, TicketIDs: []uint{301, 302}})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Assigned)
	assert.Empty(t, result.StillWaitlisted)
}

func TestBulkReassignUseCase_Execute_SkipsOtherSites(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeWaitlistedTicket(t, ticketID, 3), nil
		},
	}
	locator := &mockResolverLocator{
		LocateFunc: func(ctx context.Context, skillGroupID, siteID uint) *uint {
			t.Fatal("locator should not run for tickets outside the requested site")
			return nil
		},
	}

	uc := NewBulkReassignUseCase(repo, locator, nil, &mockLogger{})
	result, err := uc.Execute(context.Background(), BulkReassignCommand{SiteID: 99, TicketIDs: []uint{301}})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Attempted)
}

func TestBulkReassignUseCase_Execute_RequiresSiteID(t *testing.T) {
	uc := NewBulkReassignUseCase(&mockTicketRepository{}, &mockResolverLocator{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), BulkReassignCommand{})
	assert.Error(t, err)
}
