package notification

import (
	"fmt"
	"time"

	"github.com/atrium-inc/atrium/internal/domain/notification/valueobjects"
)

// DeliveryRecord is one row of the append-only push delivery audit trail.
// Records are created PENDING before the transport call and finalized to
// DELIVERED or FAILED afterwards; they are never deleted or rewritten.
type DeliveryRecord struct {
	id             uint
	notificationID uint
	endpointID     uint
	status         valueobjects.DeliveryStatus
	failureReason  string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewDeliveryRecord(notificationID, endpointID uint) (*DeliveryRecord, error) {
	if notificationID == 0 {
		return nil, fmt.Errorf("notification id is required")
	}
	if endpointID == 0 {
		return nil, fmt.Errorf("endpoint id is required")
	}
	now := time.Now()
	return &DeliveryRecord{
		notificationID: notificationID,
		endpointID:     endpointID,
		status:         valueobjects.DeliveryPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructDeliveryRecord rebuilds a DeliveryRecord from persisted state.
func ReconstructDeliveryRecord(
	id uint,
	notificationID uint,
	endpointID uint,
	status valueobjects.DeliveryStatus,
	failureReason string,
	createdAt time.Time,
	updatedAt time.Time,
) *DeliveryRecord {
	return &DeliveryRecord{
		id:             id,
		notificationID: notificationID,
		endpointID:     endpointID,
		status:         status,
		failureReason:  failureReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *DeliveryRecord) ID() uint                            { return r.id }
func (r *DeliveryRecord) NotificationID() uint                { return r.notificationID }
func (r *DeliveryRecord) EndpointID() uint                    { return r.endpointID }
func (r *DeliveryRecord) Status() valueobjects.DeliveryStatus { return r.status }
func (r *DeliveryRecord) FailureReason() string               { return r.failureReason }
func (r *DeliveryRecord) CreatedAt() time.Time                { return r.createdAt }
func (r *DeliveryRecord) UpdatedAt() time.Time                { return r.updatedAt }

func (r *DeliveryRecord) SetID(id uint) { r.id = id }

func (r *DeliveryRecord) MarkDelivered() error {
	if r.status.IsTerminal() {
		return fmt.Errorf("delivery record already finalized as %s", r.status)
	}
	r.status = valueobjects.DeliveryDelivered
	r.updatedAt = time.Now()
	return nil
}

func (r *DeliveryRecord) MarkFailed(reason string) error {
	if r.status.IsTerminal() {
		return fmt.Errorf("delivery record already finalized as %s", r.status)
	}
	r.status = valueobjects.DeliveryFailed
	r.failureReason = reason
	r.updatedAt = time.Now()
	return nil
}
