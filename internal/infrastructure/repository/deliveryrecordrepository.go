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

type DeliveryRecordRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewDeliveryRecordRepository(db *gorm.DB) *DeliveryRecordRepository {
	return &DeliveryRecordRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *DeliveryRecordRepository) Save(ctx context.Context, rec *notification.DeliveryRecord) error {
	model := r.mapper.DeliveryToModel(rec)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save delivery record: %w", err)
	}

	rec.SetID(model.ID)
	return nil
}

func (r *DeliveryRecordRepository) Update(ctx context.Context, rec *notification.DeliveryRecord) error {
	model := r.mapper.DeliveryToModel(rec)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DeliveryRecordModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update delivery record: %w", result.Error)
	}

	return nil
}

func (r *DeliveryRecordRepository) ListByNotification(ctx context.Context, notificationID uint) ([]*notification.DeliveryRecord, error) {
	var recordModels []models.DeliveryRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("notification_id = ?", notificationID).
		Order("id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list delivery records: %w", err)
	}

	records := make([]*notification.DeliveryRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = r.mapper.DeliveryToDomain(&model)
	}

	return records, nil
}
