package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadline(t *testing.T) {
	assignedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, assignedAt.Add(24*time.Hour), Deadline(assignedAt, 24))
}

func TestProgress_RoundTrip(t *testing.T) {
	assignedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	deadline := Deadline(assignedAt, 8)

	// At assignment the window is untouched.
	assert.Equal(t, 0.0, Progress(assignedAt, assignedAt, deadline, 0))
	assert.Equal(t, 8*time.Hour, Remaining(assignedAt, deadline, 0))

	// At the deadline with no pauses the window is fully consumed.
	assert.Equal(t, 1.0, Progress(deadline, assignedAt, deadline, 0))
	assert.Equal(t, time.Duration(0), Remaining(deadline, deadline, 0))
}

func TestProgress_Clamped(t *testing.T) {
	assignedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	deadline := Deadline(assignedAt, 8)

	// Past the deadline stays clamped at 1.
	assert.Equal(t, 1.0, Progress(deadline.Add(3*time.Hour), assignedAt, deadline, 0))

	// Heavy pause crediting can push elapsed negative; clamp at 0.
	assert.Equal(t, 0.0, Progress(assignedAt.Add(time.Hour), assignedAt, deadline, 600))
}

func TestProgress_PauseCredit(t *testing.T) {
	assignedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	deadline := Deadline(assignedAt, 8)

	// 4h elapsed with 2h paused: only 2h of the 8h window consumed.
	now := assignedAt.Add(4 * time.Hour)
	assert.InDelta(t, 0.25, Progress(now, assignedAt, deadline, 120), 0.001)
	assert.Equal(t, 6*time.Hour, Remaining(now, deadline, 120))
}

func TestEffectiveNow_FrozenWhilePaused(t *testing.T) {
	tkt := newTestTicket(t)
	require.NoError(t, tkt.Assign(7, time.Now()))

	pausedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, tkt.PauseWork(pausedAt))

	// The clock reports the pause instant no matter how far now advances.
	assert.Equal(t, pausedAt, tkt.EffectiveNow(pausedAt.Add(48*time.Hour)))

	require.NoError(t, tkt.ResumeWork(pausedAt.Add(time.Hour)))
	later := pausedAt.Add(2 * time.Hour)
	assert.Equal(t, later, tkt.EffectiveNow(later))
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{name: "hours and minutes", remaining: 3*time.Hour + 20*time.Minute, want: "3h 20m remaining"},
		{name: "zero", remaining: 0, want: "0h 00m remaining"},
		{name: "overdue", remaining: -(time.Hour + 5*time.Minute), want: "overdue by 1h 05m"},
		{name: "sub-minute rounds", remaining: 90 * time.Second, want: "0h 02m remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.remaining))
		})
	}
}
