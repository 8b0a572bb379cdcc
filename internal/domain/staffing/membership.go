package staffing

import "context"

// Membership is one user's standing at one site. Only active memberships
// grant the right to act in the site; a missing or inactive membership makes
// any availability record for that user stale.
type Membership struct {
	UserID   uint
	SiteID   uint
	Role     Role
	IsActive bool
}

// MembershipStore is the organizational-membership collaborator.
type MembershipStore interface {
	// ActiveMember returns the membership if userID is an active member of
	// siteID, nil otherwise.
	ActiveMember(ctx context.Context, userID, siteID uint) (*Membership, error)

	// ListActiveMembers returns every active membership at the site.
	ListActiveMembers(ctx context.Context, siteID uint) ([]Membership, error)
}

// Availability is one (user, skill group, site) auto-assignment eligibility
// record. Distinct from membership: it says a user is currently willing and
// able to take tickets of that skill group, not that they may act in the
// site at all.
type Availability struct {
	UserID       uint
	SkillGroupID uint
	SiteID       uint
	IsAvailable  bool
}

// AvailabilityStore is the resolver-availability collaborator.
type AvailabilityStore interface {
	// FindAvailable returns available user IDs for the skill group at the
	// site, in store order. No load-balancing is implied by the ordering.
	FindAvailable(ctx context.Context, skillGroupID, siteID uint) ([]uint, error)

	// HasSkillGroup reports whether the user has any availability record for
	// the skill group at the site, available or not.
	HasSkillGroup(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error)

	// SetAvailable flips a user's availability. Used by admin tooling, not by
	// the intake path.
	SetAvailable(ctx context.Context, userID, skillGroupID, siteID uint, available bool) error
}
