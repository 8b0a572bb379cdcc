package usecases

import (
	"context"

	"github.com/atrium-inc/atrium/internal/domain/catalog"
	vo "github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// Recipient is one resolved fan-out target.
type Recipient struct {
	UserID     uint
	Role       staffing.Role
	IsAssignee bool
}

// ticketEventRoles is the allow-list for created/waitlisted/assigned events.
// Tenants are in the list but gated by the creator rule below.
var ticketEventRoles = map[staffing.Role]bool{
	staffing.RoleMST:           true,
	staffing.RolePropertyAdmin: true,
	staffing.RoleSecurity:      true,
	staffing.RoleStaff:         true,
	staffing.RoleTenant:        true,
}

// RecipientResolver computes the recipient set for one event against the
// site's active membership roster.
type RecipientResolver struct {
	memberships  staffing.MembershipStore
	availability staffing.AvailabilityStore
	refData      catalog.ReferenceDataStore
	logger       logger.Interface
}

func NewRecipientResolver(
	memberships staffing.MembershipStore,
	availability staffing.AvailabilityStore,
	refData catalog.ReferenceDataStore,
	logger logger.Interface,
) *RecipientResolver {
	return &RecipientResolver{
		memberships:  memberships,
		availability: availability,
		refData:      refData,
		logger:       logger,
	}
}

// ResolveTicketRecipients applies the role and visibility rules for a ticket
// event:
//   - tenants only ever see their own tickets, so a tenant member is included
//     only when they raised the ticket;
//   - completion pings go to property admins, plus the creator when the
//     creator is a tenant;
//   - the assignee is flagged so the caller can split the announcement into
//     "assigned to you" and "assigned to <name>" variants.
func (r *RecipientResolver) ResolveTicketRecipients(
	ctx context.Context,
	eventType vo.NotificationType,
	siteID uint,
	raisedBy uint,
	assignedTo *uint,
) ([]Recipient, error) {
	members, err := r.memberships.ListActiveMembers(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var recipients []Recipient
	for _, member := range members {
		if !r.wantsTicketEvent(eventType, member, raisedBy) {
			continue
		}
		recipients = append(recipients, Recipient{
			UserID:     member.UserID,
			Role:       member.Role,
			IsAssignee: assignedTo != nil && member.UserID == *assignedTo,
		})
	}
	return recipients, nil
}

func (r *RecipientResolver) wantsTicketEvent(eventType vo.NotificationType, member staffing.Membership, raisedBy uint) bool {
	switch eventType {
	case vo.TypeTicketCompleted:
		if member.Role.IsPropertyAdmin() {
			return true
		}
		return member.Role.IsTenant() && member.UserID == raisedBy

	case vo.TypeTicketOverdue:
		return member.Role == staffing.RoleMST || member.Role.IsPropertyAdmin()

	default:
		if !ticketEventRoles[member.Role] {
			return false
		}
		if member.Role.IsTenant() {
			return member.UserID == raisedBy
		}
		return true
	}
}

// ResolveBookingRecipients computes recipients for a room-booked event:
// property admins plus staff holding the technical skill group, who handle
// room setup.
func (r *RecipientResolver) ResolveBookingRecipients(ctx context.Context, siteID uint) ([]Recipient, error) {
	members, err := r.memberships.ListActiveMembers(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var technicalGroupID uint
	group, err := r.refData.SkillGroupByCode(ctx, catalog.SkillGroupTechnical)
	if err != nil || group == nil {
		r.logger.Warnw("technical skill group unresolved, booking fan-out limited to admins", "error", err)
	} else {
		technicalGroupID = group.ID
	}

	var recipients []Recipient
	for _, member := range members {
		if member.Role.IsPropertyAdmin() {
			recipients = append(recipients, Recipient{UserID: member.UserID, Role: member.Role})
			continue
		}
		if member.Role != staffing.RoleStaff || technicalGroupID == 0 {
			continue
		}

		hasGroup, err := r.availability.HasSkillGroup(ctx, member.UserID, technicalGroupID, siteID)
		if err != nil {
			r.logger.Warnw("skill group check failed, skipping booking recipient",
				"user_id", member.UserID, "error", err)
			continue
		}
		if hasGroup {
			recipients = append(recipients, Recipient{UserID: member.UserID, Role: member.Role})
		}
	}
	return recipients, nil
}
