package booking

import (
	"fmt"
	"time"
)

// Countdown is derived display state for a booking's rental window,
// recomputed per tick. It never depends on the booking status field.
type Countdown struct {
	Label     string `json:"label"`
	Remaining string `json:"remaining"`
}

const (
	LabelStartsIn = "Starts in"
	LabelEndsIn   = "Ends in"
	LabelStatus   = "Status"

	RemainingCompleted = "Completed"
	RemainingNow       = "Now"
)

// ComputeCountdown derives the (label, remaining) pair for a rental window
// at the given wall-clock instant. Pure: same inputs, same output.
//
// A booking whose window has already closed renders Completed immediately;
// "Ends in" is only reachable strictly inside the window.
func ComputeCountdown(start, end, now time.Time) Countdown {
	var target time.Time
	var label string
	switch {
	case now.Before(start):
		target = start
		label = LabelStartsIn
	case now.Before(end):
		target = end
		label = LabelEndsIn
	default:
		return Countdown{Label: LabelStatus, Remaining: RemainingCompleted}
	}
	diff := target.Sub(now)
	if diff <= 0 {
		// boundary race between tick and date rollover
		return Countdown{Label: label, Remaining: RemainingNow}
	}
	return Countdown{Label: label, Remaining: FormatRemaining(diff)}
}

// FormatRemaining renders a duration as "Xd Xh Xm Xs" with floor division.
// Leading zero-value units are dropped, but once a unit renders every unit
// below it renders too; seconds always render. A non-positive duration
// renders Now.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return RemainingNow
	}
	total := int64(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
