package staffing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atrium-inc/atrium/internal/shared/logger"
)

type stubLogger struct{}

func (stubLogger) Debug(msg string, args ...any)                    {}
func (stubLogger) Info(msg string, args ...any)                     {}
func (stubLogger) Warn(msg string, args ...any)                     {}
func (stubLogger) Error(msg string, args ...any)                    {}
func (stubLogger) Fatal(msg string, args ...any)                    {}
func (s stubLogger) With(args ...any) logger.Interface              { return s }
func (s stubLogger) Named(name string) logger.Interface             { return s }
func (stubLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (stubLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (stubLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (stubLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (stubLogger) Fatalw(msg string, keysAndValues ...interface{})  {}

type stubAvailabilityStore struct {
	FindAvailableFunc func(ctx context.Context, skillGroupID, siteID uint) ([]uint, error)
}

func (s *stubAvailabilityStore) FindAvailable(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
	if s.FindAvailableFunc != nil {
		return s.FindAvailableFunc(ctx, skillGroupID, siteID)
	}
	return nil, nil
}

func (s *stubAvailabilityStore) HasSkillGroup(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error) {
	return false, nil
}

func (s *stubAvailabilityStore) SetAvailable(ctx context.Context, userID, skillGroupID, siteID uint, available bool) error {
	return nil
}

type stubMembershipStore struct {
	ActiveMemberFunc func(ctx context.Context, userID, siteID uint) (*Membership, error)
}

func (s *stubMembershipStore) ActiveMember(ctx context.Context, userID, siteID uint) (*Membership, error) {
	if s.ActiveMemberFunc != nil {
		return s.ActiveMemberFunc(ctx, userID, siteID)
	}
	return nil, nil
}

func (s *stubMembershipStore) ListActiveMembers(ctx context.Context, siteID uint) ([]Membership, error) {
	return nil, nil
}

func TestResolverLocator_Locate_ReturnsFirstEligibleCandidate(t *testing.T) {
	availability := &stubAvailabilityStore{
		FindAvailableFunc: func(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
			return []uint{7, 8}, nil
		},
	}
	memberships := &stubMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*Membership, error) {
			return &Membership{UserID: userID, SiteID: siteID, Role: RoleStaff, IsActive: true}, nil
		},
	}

	locator := NewResolverLocator(availability, memberships, stubLogger{})
	got := locator.Locate(context.Background(), 1, 10)

	require.NotNil(t, got)
	assert.Equal(t, uint(7), *got)
}

func TestResolverLocator_Locate_NoAvailabilityRows(t *testing.T) {
	locator := NewResolverLocator(&stubAvailabilityStore{}, &stubMembershipStore{}, stubLogger{})

	assert.Nil(t, locator.Locate(context.Background(), 1, 10))
}

func TestResolverLocator_Locate_SkipsStaleAvailability(t *testing.T) {
	availability := &stubAvailabilityStore{
		FindAvailableFunc: func(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
			return []uint{7, 8}, nil
		},
	}
	// User 7 was deactivated from the site but kept an availability row.
	memberships := &stubMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*Membership, error) {
			if userID == 7 {
				return nil, nil
			}
			return &Membership{UserID: userID, SiteID: siteID, Role: RoleMST, IsActive: true}, nil
		},
	}

	locator := NewResolverLocator(availability, memberships, stubLogger{})
	got := locator.Locate(context.Background(), 1, 10)

	require.NotNil(t, got)
	assert.Equal(t, uint(8), *got)
}

func TestResolverLocator_Locate_AllCandidatesStale(t *testing.T) {
	availability := &stubAvailabilityStore{
		FindAvailableFunc: func(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
			return []uint{7}, nil
		},
	}
	memberships := &stubMembershipStore{
		ActiveMemberFunc: func(ctx context.Context, userID, siteID uint) (*Membership, error) {
			return nil, nil
		},
	}

	locator := NewResolverLocator(availability, memberships, stubLogger{})
	assert.Nil(t, locator.Locate(context.Background(), 1, 10))
}

func TestResolverLocator_Locate_StoreErrorsResolveToNoResolver(t *testing.T) {
	availability := &stubAvailabilityStore{
		FindAvailableFunc: func(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
			return nil, errors.New("store unreachable")
		},
	}

	locator := NewResolverLocator(availability, &stubMembershipStore{}, stubLogger{})
	assert.Nil(t, locator.Locate(context.Background(), 1, 10))
}

func TestNewRole(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "tenant"},
		{input: "property_admin"},
		{input: "mst"},
		{input: "TENANT", wantErr: true},
		{input: "admin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := NewRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		})
	}
}
