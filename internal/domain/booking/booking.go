package booking

import (
	"context"
	"strconv"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/shared/events"
)

// RoomBooking is the slice of a room reservation the notification fan-out
// needs. Booking management itself lives in the surrounding CRUD surface.
type RoomBooking struct {
	ID       uint
	RoomName string
	SiteID   uint
	BookedBy uint
	StartsAt time.Time
	EndsAt   time.Time
}

// BookingStore resolves bookings for notification fan-out.
// A nil result with nil error means the booking does not exist.
type BookingStore interface {
	GetByID(ctx context.Context, bookingID uint) (*RoomBooking, error)
}

const EventRoomBooked = "booking.room_booked"

type RoomBookedEvent struct {
	events.BaseEvent
	BookingID uint
	RoomName  string
	SiteID    uint
	BookedBy  uint
	StartsAt  time.Time
}

func NewRoomBookedEvent(b *RoomBooking) RoomBookedEvent {
	return RoomBookedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(b.ID), 10),
			EventType:   EventRoomBooked,
			OccurredAt:  time.Now(),
			Version:     1,
		},
		BookingID: b.ID,
		RoomName:  b.RoomName,
		SiteID:    b.SiteID,
		BookedBy:  b.BookedBy,
		StartsAt:  b.StartsAt,
	}
}
