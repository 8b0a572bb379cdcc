package staffing

import (
	"context"

	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// ResolverLocator finds an eligible, available staff member for a skill group
// at a site. Both lookups are hard gates: any store error or missing record
// resolves to "no resolver found" rather than propagating, because the caller
// always has a safe fallback (waitlist).
type ResolverLocator struct {
	availability AvailabilityStore
	memberships  MembershipStore
	logger       logger.Interface
}

func NewResolverLocator(
	availability AvailabilityStore,
	memberships MembershipStore,
	logger logger.Interface,
) *ResolverLocator {
	return &ResolverLocator{
		availability: availability,
		memberships:  memberships,
		logger:       logger,
	}
}

// Locate returns the user ID of an eligible resolver, or nil when none is
// found. Candidates are taken in store order; there is no load-balancing
// guarantee at this layer. An availability record without a matching active
// membership is stale drift between the two stores and is skipped.
func (l *ResolverLocator) Locate(ctx context.Context, skillGroupID, siteID uint) *uint {
	candidates, err := l.availability.FindAvailable(ctx, skillGroupID, siteID)
	if err != nil {
		l.logger.Warnw("availability lookup failed, falling back to no resolver",
			"skill_group_id", skillGroupID, "site_id", siteID, "error", err)
		return nil
	}

	for _, userID := range candidates {
		member, err := l.memberships.ActiveMember(ctx, userID, siteID)
		if err != nil {
			l.logger.Warnw("membership check failed, skipping candidate",
				"user_id", userID, "site_id", siteID, "error", err)
			continue
		}
		if member == nil {
			l.logger.Warnw("stale availability record without active membership, skipping candidate",
				"user_id", userID, "site_id", siteID, "skill_group_id", skillGroupID)
			continue
		}
		return &userID
	}

	return nil
}
