package booking_test

import (
	"testing"
	"time"

	bk "blacktie/src/booking"
	"blacktie/src/models"
	"blacktie/src/types"

	"github.com/stretchr/testify/require"
)

func makeBooking(status types.BookingStatus, start, end time.Time) models.Booking {
	return models.Booking{
		ID:          1,
		Status:      status,
		BookingDate: start,
		ReturnDate:  end,
	}
}

func TestCanCancel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		status types.BookingStatus
		start  time.Time
		want   bool
	}{
		{"pending approval starting tomorrow", types.BOOKING_PENDING_APPROVAL, tomorrow, true},
		{"approved starting tomorrow", types.BOOKING_APPROVED, tomorrow, true},
		{"pending approval already started", types.BOOKING_PENDING_APPROVAL, yesterday, false},
		{"paid starting tomorrow", types.BOOKING_PAID, tomorrow, false},
		{"rejected starting tomorrow", types.BOOKING_REJECTED, tomorrow, false},
		{"cancelled starting tomorrow", types.BOOKING_CANCELLED, tomorrow, false},
		{"starting exactly now", types.BOOKING_APPROVED, now, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := makeBooking(tt.status, tt.start, tt.start.Add(48*time.Hour))
			require.Equal(t, tt.want, bk.CanCancel(b, now))
		})
	}
}

func TestCanRequestDeposit(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	t.Run("paid and returned", func(t *testing.T) {
		b := makeBooking(types.BOOKING_PAID, yesterday.Add(-48*time.Hour), yesterday)
		require.True(t, bk.CanRequestDeposit(b, now))
	})

	t.Run("deposit already requested", func(t *testing.T) {
		b := makeBooking(types.BOOKING_PAID, yesterday.Add(-48*time.Hour), yesterday)
		b.DepositRequested = true
		require.False(t, bk.CanRequestDeposit(b, now))
	})

	t.Run("completed and returned", func(t *testing.T) {
		b := makeBooking(types.BOOKING_COMPLETED, yesterday.Add(-48*time.Hour), yesterday)
		require.True(t, bk.CanRequestDeposit(b, now))
	})

	t.Run("still inside rental window", func(t *testing.T) {
		b := makeBooking(types.BOOKING_PAID, yesterday, tomorrow)
		require.False(t, bk.CanRequestDeposit(b, now))
	})

	t.Run("not paid", func(t *testing.T) {
		b := makeBooking(types.BOOKING_APPROVED, yesterday.Add(-48*time.Hour), yesterday)
		require.False(t, bk.CanRequestDeposit(b, now))
	})

	t.Run("return date exactly now", func(t *testing.T) {
		b := makeBooking(types.BOOKING_PAID, yesterday, now)
		require.False(t, bk.CanRequestDeposit(b, now))
	})
}

func TestCanPayDeposit(t *testing.T) {
	b := makeBooking(types.BOOKING_PAID, time.Now().Add(-72*time.Hour), time.Now().Add(-24*time.Hour))
	require.False(t, bk.CanPayDeposit(b))

	b.DepositRequested = true
	require.True(t, bk.CanPayDeposit(b))

	b.DepositPaid = true
	require.False(t, bk.CanPayDeposit(b))
}

func TestCanReview(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	b := makeBooking(types.BOOKING_PAID, now.Add(-72*time.Hour), now.Add(-24*time.Hour))
	require.True(t, bk.CanReview(b, now))

	b = makeBooking(types.BOOKING_PAID, now.Add(-24*time.Hour), now.Add(24*time.Hour))
	require.False(t, bk.CanReview(b, now))

	b = makeBooking(types.BOOKING_PENDING_APPROVAL, now.Add(-72*time.Hour), now.Add(-24*time.Hour))
	require.False(t, bk.CanReview(b, now))
}
