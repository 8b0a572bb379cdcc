package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/domain/ticket"
)

func activeStaffMember(userID, siteID uint) *staffing.Membership {
	return &staffing.Membership{UserID: userID, SiteID: siteID, Role: staffing.RoleStaff, IsActive: true}
}

func TestAssignTicketUseCase_Execute(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeWaitlistedTicket(t, ticketID, 3), nil
		},
	}
	memberships := &mockMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*staffing.Membership, error) {
			return activeStaffMember(userID, siteID), nil
		},
	}
	availability := &mockAvailabilityStore{
		HasSkillGroupFunc: func(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error) {
			assert.Equal(t, uint(3), skillGroupID)
			return true, nil
		},
	}
	publisher := &mockEventPublisher{}

	uc := NewAssignTicketUseCase(repo, memberships, availability, publisher, &mockLogger{})
	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 102, AssigneeID: 8})

	require.NoError(t, err)
	assert.Equal(t, uint(102), result.TicketID)
	assert.Equal(t, "assigned", result.Status)
	assert.Equal(t, uint(8), result.AssignedTo)
	require.NotNil(t, result.SLADeadline)

	require.Len(t, publisher.Published, 1)
	assert.Equal(t, ticket.EventTicketAssigned, publisher.Published[0].GetEventType())
}

func TestAssignTicketUseCase_Execute_RejectsNonMember(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeWaitlistedTicket(t, ticketID, 3), nil
		},
	}
	memberships := &mockMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*staffing.Membership, error) {
			return nil, nil
		},
	}

	uc := NewAssignTicketUseCase(repo, memberships, &mockAvailabilityStore{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 102, AssigneeID: 8})
	assert.Error(t, err)
}

func TestAssignTicketUseCase_Execute_RejectsTenant(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeWaitlistedTicket(t, ticketID, 3), nil
		},
	}
	memberships := &mockMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*staffing.Membership, error) {
			return &staffing.Membership{UserID: userID, SiteID: siteID, Role: staffing.RoleTenant, IsActive: true}, nil
		},
	}

	uc := NewAssignTicketUseCase(repo, memberships, &mockAvailabilityStore{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 102, AssigneeID: 8})
	assert.Error(t, err)
}

func TestAssignTicketUseCase_Execute_RejectsOutsideSkillGroup(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return makeWaitlistedTicket(t, ticketID, 3), nil
		},
	}
	memberships := &mockMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*staffing.Membership, error) {
			return activeStaffMember(userID, siteID), nil
		},
	}
	availability := &mockAvailabilityStore{
		HasSkillGroupFunc: func(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error) {
			return false, nil
		},
	}

	uc := NewAssignTicketUseCase(repo, memberships, availability, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 102, AssigneeID: 8})
	assert.Error(t, err)
}

func TestAssignTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockMembershipStore{}, &mockAvailabilityStore{}, nil, &mockLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 999, AssigneeID: 8})
	assert.Error(t, err)
}
