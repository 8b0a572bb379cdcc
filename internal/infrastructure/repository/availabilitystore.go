package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
	db "github.com/atrium-inc/atrium/internal/shared/db"
)

type AvailabilityStore struct {
	db *gorm.DB
}

func NewAvailabilityStore(db *gorm.DB) *AvailabilityStore {
	return &AvailabilityStore{db: db}
}

// FindAvailable returns available user IDs in stable user_id order. The
// locator takes the first row, so the ordering decides who wins a tie.
func (s *AvailabilityStore) FindAvailable(ctx context.Context, skillGroupID, siteID uint) ([]uint, error) {
	var userIDs []uint
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.
		Model(&models.ResolverAvailabilityModel{}).
		Where("skill_group_id = ? AND site_id = ? AND is_available = ?", skillGroupID, siteID, true).
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to find available resolvers: %w", err)
	}

	return userIDs, nil
}

func (s *AvailabilityStore) HasSkillGroup(ctx context.Context, userID, skillGroupID, siteID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.
		Model(&models.ResolverAvailabilityModel{}).
		Where("user_id = ? AND skill_group_id = ? AND site_id = ?", userID, skillGroupID, siteID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check skill group membership: %w", err)
	}

	return count > 0, nil
}

func (s *AvailabilityStore) SetAvailable(ctx context.Context, userID, skillGroupID, siteID uint, available bool) error {
	tx := db.GetTxFromContext(ctx, s.db)

	result := tx.
		Model(&models.ResolverAvailabilityModel{}).
		Where("user_id = ? AND skill_group_id = ? AND site_id = ?", userID, skillGroupID, siteID).
		Update("is_available", available)

	if result.Error != nil {
		return fmt.Errorf("failed to set resolver availability: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		model := &models.ResolverAvailabilityModel{
			UserID:       userID,
			SkillGroupID: skillGroupID,
			SiteID:       siteID,
			IsAvailable:  available,
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create resolver availability: %w", err)
		}
	}

	return nil
}
