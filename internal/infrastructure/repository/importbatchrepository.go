package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atrium-inc/atrium/internal/domain/ticket"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/mappers"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
	db "github.com/atrium-inc/atrium/internal/shared/db"
)

type ImportBatchRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewImportBatchRepository(db *gorm.DB) *ImportBatchRepository {
	return &ImportBatchRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ImportBatchRepository) Save(ctx context.Context, b *ticket.ImportBatch) error {
	model := r.mapper.BatchToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save import batch: %w", err)
	}

	return nil
}

func (r *ImportBatchRepository) Update(ctx context.Context, b *ticket.ImportBatch) error {
	model := r.mapper.BatchToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ImportBatchModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update import batch: %w", result.Error)
	}

	return nil
}

func (r *ImportBatchRepository) GetByID(ctx context.Context, batchID string) (*ticket.ImportBatch, error) {
	var model models.ImportBatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ?", batchID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find import batch: %w", err)
	}

	return r.mapper.BatchToDomain(&model), nil
}
