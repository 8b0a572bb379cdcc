package valueobjects

import "fmt"

// DeliveryStatus is the lifecycle of one push dispatch attempt. PENDING is a
// transient in-call state: every attempt must end DELIVERED or FAILED before
// the dispatch call returns.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

var validDeliveryStatuses = map[DeliveryStatus]bool{
	DeliveryPending:   true,
	DeliveryDelivered: true,
	DeliveryFailed:    true,
}

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	return validDeliveryStatuses[s]
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

func NewDeliveryStatus(v string) (DeliveryStatus, error) {
	s := DeliveryStatus(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid delivery status: %s", v)
	}
	return s, nil
}
