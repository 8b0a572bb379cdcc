package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{StatusOpen, StatusAssigned, true},
		{StatusOpen, StatusWaitlist, true},
		{StatusOpen, StatusResolved, false},
		{StatusWaitlist, StatusAssigned, true},
		{StatusWaitlist, StatusInProgress, false},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusWaitlist, true},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusAssigned, false},
		{StatusResolved, StatusClosed, true},
		{StatusResolved, StatusOpen, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusAssigned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatus_IsAssignable(t *testing.T) {
	assert.True(t, StatusOpen.IsAssignable())
	assert.True(t, StatusWaitlist.IsAssignable())
	assert.False(t, StatusAssigned.IsAssignable())
	assert.False(t, StatusInProgress.IsAssignable())
	assert.False(t, StatusResolved.IsAssignable())
	assert.False(t, StatusClosed.IsAssignable())
}

func TestNewTicketStatus(t *testing.T) {
	status, err := NewTicketStatus("waitlist")
	assert.NoError(t, err)
	assert.Equal(t, StatusWaitlist, status)

	_, err = NewTicketStatus("pending")
	assert.Error(t, err)
}

func TestNewPriority(t *testing.T) {
	priority, err := NewPriority("critical")
	assert.NoError(t, err)
	assert.True(t, priority.IsCritical())

	_, err = NewPriority("urgent")
	assert.Error(t, err)
}
