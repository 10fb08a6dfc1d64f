package booking_test

import (
	"testing"
	"time"

	bk "blacktie/src/booking"

	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
)

func TestComputeCountdown(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		label     string
		remaining string
	}{
		{
			name:      "before window counts down to start",
			now:       windowStart.Add(-1 * time.Hour),
			label:     bk.LabelStartsIn,
			remaining: "1h 0m 0s",
		},
		{
			name:      "inside window counts down to end",
			now:       windowStart.Add(30 * time.Minute),
			label:     bk.LabelEndsIn,
			remaining: "23h 30m 0s",
		},
		{
			name:      "at start boundary targets end",
			now:       windowStart,
			label:     bk.LabelEndsIn,
			remaining: "1d 0h 0m 0s",
		},
		{
			name:      "at end boundary is completed",
			now:       windowEnd,
			label:     bk.LabelStatus,
			remaining: bk.RemainingCompleted,
		},
		{
			name:      "long past window is completed",
			now:       windowEnd.Add(400 * 24 * time.Hour),
			label:     bk.LabelStatus,
			remaining: bk.RemainingCompleted,
		},
		{
			name:      "seconds only",
			now:       windowEnd.Add(-45 * time.Second),
			label:     bk.LabelEndsIn,
			remaining: "45s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bk.ComputeCountdown(windowStart, windowEnd, tt.now)
			require.Equal(t, tt.label, got.Label)
			require.Equal(t, tt.remaining, got.Remaining)
		})
	}
}

func TestComputeCountdownIsPure(t *testing.T) {
	now := windowStart.Add(-90 * time.Minute)
	first := bk.ComputeCountdown(windowStart, windowEnd, now)
	second := bk.ComputeCountdown(windowStart, windowEnd, now)
	require.Equal(t, first, second)
}

func TestComputeCountdownIgnoresStatus(t *testing.T) {
	// The countdown depends only on the window, never on the status field,
	// so a closed window always renders Completed.
	got := bk.ComputeCountdown(windowStart, windowEnd, windowEnd.Add(time.Second))
	require.Equal(t, bk.LabelStatus, got.Label)
	require.Equal(t, bk.RemainingCompleted, got.Remaining)
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"1d 1h 1m 1s", 90061 * time.Second, "1d 1h 1m 1s"},
		{"no leading zero units", 45 * time.Second, "45s"},
		{"minutes render with seconds", 5 * time.Minute, "5m 0s"},
		{"hours force minutes", 1 * time.Hour, "1h 0m 0s"},
		{"days force all lower units", 48 * time.Hour, "2d 0h 0m 0s"},
		{"zero is Now", 0, bk.RemainingNow},
		{"negative is Now", -3 * time.Second, bk.RemainingNow},
		{"sub-second floors to zero seconds", 500 * time.Millisecond, "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, bk.FormatRemaining(tt.d))
		})
	}
}
