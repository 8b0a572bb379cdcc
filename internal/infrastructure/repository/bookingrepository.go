package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/atrium-inc/atrium/internal/domain/booking"
	"github.com/atrium-inc/atrium/internal/infrastructure/persistence/models"
	db "github.com/atrium-inc/atrium/internal/shared/db"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.RoomBooking) error {
	model := &models.RoomBookingModel{
		RoomName: b.RoomName,
		SiteID:   b.SiteID,
		BookedBy: b.BookedBy,
		StartsAt: b.StartsAt.UnixMilli(),
		EndsAt:   b.EndsAt.UnixMilli(),
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save room booking: %w", err)
	}

	b.ID = model.ID
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uint) (*booking.RoomBooking, error) {
	var model models.RoomBookingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find room booking: %w", err)
	}

	return &booking.RoomBooking{
		ID:       model.ID,
		RoomName: model.RoomName,
		SiteID:   model.SiteID,
		BookedBy: model.BookedBy,
		StartsAt: time.Unix(0, model.StartsAt*int64(time.Millisecond)),
		EndsAt:   time.Unix(0, model.EndsAt*int64(time.Millisecond)),
	}, nil
}
