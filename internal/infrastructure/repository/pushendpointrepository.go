package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atrium-inc/atrium/internal/domain/notification"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/mappers"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
	db "github.com/atrium-inc/atrium/internal/shared/db"
)

type PushEndpointRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewPushEndpointRepository(db *gorm.DB) *PushEndpointRepository {
	return &PushEndpointRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *PushEndpointRepository) Save(ctx context.Context, e *notification.PushEndpoint) error {
	model := r.mapper.EndpointToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save push endpoint: %w", err)
	}

	e.SetID(model.ID)
	return nil
}

func (r *PushEndpointRepository) Update(ctx context.Context, e *notification.PushEndpoint) error {
	model := r.mapper.EndpointToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PushEndpointModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update push endpoint: %w", result.Error)
	}

	return nil
}

// ListActiveByUser returns the user's active endpoints newest-updated first.
// Callers that deduplicate by browser fingerprint rely on this ordering to
// keep the most recently refreshed endpoint.
func (r *PushEndpointRepository) ListActiveByUser(ctx context.Context, userID uint) ([]*notification.PushEndpoint, error) {
	var endpointModels []models.PushEndpointModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("updated_at DESC").
		Find(&endpointModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list push endpoints: %w", err)
	}

	endpoints := make([]*notification.PushEndpoint, len(endpointModels))
	for i, model := range endpointModels {
		endpoints[i] = r.mapper.EndpointToDomain(&model)
	}

	return endpoints, nil
}

func (r *PushEndpointRepository) GetByFingerprint(ctx context.Context, userID uint, fingerprint string) (*notification.PushEndpoint, error) {
	var model models.PushEndpointModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND browser_fingerprint = ?", userID, fingerprint).
		Order("updated_at DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find push endpoint: %w", err)
	}

	return r.mapper.EndpointToDomain(&model), nil
}

func (r *PushEndpointRepository) Deactivate(ctx context.Context, endpointID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PushEndpointModel{}).
		Where("id = ?", endpointID).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to deactivate push endpoint: %w", result.Error)
	}

	return nil
}
