package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atrium-inc/atrium/internal/domain/staffing"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
	db "github.com/atrium-inc/atrium/internal/shared/db"
)

type MembershipStore struct {
	db *gorm.DB
}

func NewMembershipStore(db *gorm.DB) *MembershipStore {
	return &MembershipStore{db: db}
}

func (s *MembershipStore) ActiveMember(ctx context.Context, userID, siteID uint) (*staffing.Membership, error) {
	var model models.SiteMembershipModel
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.
		Where("user_id = ? AND site_id = ? AND is_active = ?", userID, siteID, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find site membership: %w", err)
	}

	return membershipToDomain(&model)
}

func (s *MembershipStore) ListActiveMembers(ctx context.Context, siteID uint) ([]staffing.Membership, error) {
	var membershipModels []models.SiteMembershipModel
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.
		Where("site_id = ? AND is_active = ?", siteID, true).
		Order("user_id ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list site memberships: %w", err)
	}

	memberships := make([]staffing.Membership, 0, len(membershipModels))
	for i := range membershipModels {
		m, err := membershipToDomain(&membershipModels[i])
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, *m)
	}

	return memberships, nil
}

func membershipToDomain(model *models.SiteMembershipModel) (*staffing.Membership, error) {
	role, err := staffing.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("site membership %d: %w", model.ID, err)
	}

	return &staffing.Membership{
		UserID:   model.UserID,
		SiteID:   model.SiteID,
		Role:     role,
		IsActive: model.IsActive,
	}, nil
}
