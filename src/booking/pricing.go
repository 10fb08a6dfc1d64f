package booking

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidWindow = errors.New("return date must be after booking date")

var ErrWindowInPast = errors.New("booking date must not be in the past")

// RentalDays counts billable days for a window. Partial days round up and
// every rental is billed at least one day.
func RentalDays(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice is the rental cost for the window at the garment's daily rate,
// fixed at creation time.
func TotalPrice(pricePerDay float64, start, end time.Time) float64 {
	return pricePerDay * float64(RentalDays(start, end))
}

// ValidateWindow is the creation-time precondition on a requested rental
// window. It is not re-applied to records read back from the server.
func ValidateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	if start.Before(now) {
		return ErrWindowInPast
	}
	return nil
}

// Overlaps reports whether two rental windows intersect. Touching
// boundaries (one window ending exactly when the other starts) do not
// count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
