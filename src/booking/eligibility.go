package booking

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"time"
)

// CanCancel reports whether the renter may still request cancellation:
// strictly before the rental window opens and only while the booking is
// awaiting approval or approved. The status check applies on every view.
func CanCancel(b models.Booking, now time.Time) bool {
	if !now.Before(b.BookingDate) {
		return false
	}
	return b.Status == types.BOOKING_PENDING_APPROVAL || b.Status == types.BOOKING_APPROVED
}

// CanRequestDeposit is the owner-side gate for attaching a deposit request:
// the rental must be paid for (or completed), the return date must have
// passed, and no deposit may already be requested. Advisory only; the
// server re-checks authorization.
func CanRequestDeposit(b models.Booking, now time.Time) bool {
	if b.Status != types.BOOKING_PAID && b.Status != types.BOOKING_COMPLETED {
		return false
	}
	if !b.ReturnDate.Before(now) {
		return false
	}
	return !b.DepositRequested
}

// CanPayDeposit reports whether the renter still owes a requested deposit.
func CanPayDeposit(b models.Booking) bool {
	return b.DepositRequested && !b.DepositPaid
}

// CanReview allows review exchange once the rental has been paid for and
// the window has closed.
func CanReview(b models.Booking, now time.Time) bool {
	if b.Status != types.BOOKING_PAID && b.Status != types.BOOKING_COMPLETED {
		return false
	}
	return !b.ReturnDate.After(now)
}
