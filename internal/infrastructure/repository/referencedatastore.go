package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atrium-inc/atrium/internal/domain/catalog"
	vo "github.com/atrium-inc/atrium/internal/domain/ticket/valueobjects"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
	db "github.com/atrium-inc/atrium/internal/shared/db"
)

// ReferenceDataStore resolves category and skill group reference data from
// the database. Wrap it with cache.CatalogCache in production wiring; this
// data changes rarely and is read on every intake.
type ReferenceDataStore struct {
	db *gorm.DB
}

func NewReferenceDataStore(db *gorm.DB) *ReferenceDataStore {
	return &ReferenceDataStore{db: db}
}

func (s *ReferenceDataStore) CategoryByCode(ctx context.Context, code string) (*catalog.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	priority, err := vo.NewPriority(model.DefaultPriority)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", model.Code, err)
	}

	return &catalog.Category{
		Code:            model.Code,
		Name:            model.Name,
		SkillGroupID:    model.SkillGroupID,
		DefaultPriority: priority,
		SLAHours:        model.SLAHours,
	}, nil
}

func (s *ReferenceDataStore) SkillGroupByCode(ctx context.Context, code string) (*catalog.SkillGroup, error) {
	var model models.SkillGroupModel
	tx := db.GetTxFromContext(ctx, s.db)

	if err := tx.
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find skill group: %w", err)
	}

	return &catalog.SkillGroup{
		ID:   model.ID,
		Code: model.Code,
		Name: model.Name,
	}, nil
}
