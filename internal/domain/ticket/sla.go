package ticket

import (
	"fmt"
	"time"
)

// The SLA clock is a set of pure functions over stored ticket fields. It
// never runs a timer: callers pass now, and paused tickets freeze at the
// pause instant.

// Deadline computes the service-level deadline for an assignment.
func Deadline(assignedAt time.Time, slaHours int) time.Time {
	return assignedAt.Add(time.Duration(slaHours) * time.Hour)
}

// Remaining is the time left until the deadline, with accumulated pause
// minutes credited back. Negative means overdue.
func Remaining(now, deadline time.Time, pausedMinutes int) time.Duration {
	return deadline.Sub(now) + time.Duration(pausedMinutes)*time.Minute
}

// Progress is the consumed fraction of the SLA window, clamped to [0, 1].
func Progress(now, assignedAt, deadline time.Time, pausedMinutes int) float64 {
	window := deadline.Sub(assignedAt)
	if window <= 0 {
		return 1
	}

	elapsed := now.Sub(assignedAt) - time.Duration(pausedMinutes)*time.Minute
	fraction := float64(elapsed) / float64(window)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// EffectiveNow freezes the clock at the pause instant for paused tickets.
func (t *Ticket) EffectiveNow(now time.Time) time.Time {
	if t.workPaused && t.workPausedAt != nil {
		return *t.workPausedAt
	}
	return now
}

// FormatRemaining renders a remaining duration for operator display.
func FormatRemaining(remaining time.Duration) string {
	overdue := remaining < 0
	if overdue {
		remaining = -remaining
	}

	remaining = remaining.Round(time.Minute)
	hours := int(remaining / time.Hour)
	minutes := int(remaining % time.Hour / time.Minute)

	text := fmt.Sprintf("%dh %02dm", hours, minutes)
	if overdue {
		return "overdue by " + text
	}
	return text + " remaining"
}
