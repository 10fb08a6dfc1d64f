package views

import (
	"blacktie/src/api"
	"blacktie/src/booking"
	"blacktie/src/config"
	"blacktie/src/lib"
	"blacktie/src/models"
	"blacktie/src/types"
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BookingRow is one booking plus its derived, non-persisted display state.
type BookingRow struct {
	Booking           models.Booking
	Countdown         booking.Countdown
	CanCancel         bool
	CanRequestDeposit bool
}

// BookingList is the headless model behind the booking list views
// (my-bookings, owner-bookings, per-garment bookings). It holds a local
// snapshot of bookings and recomputes countdowns on a one-second tick
// while mounted.
type BookingList struct {
	bookings api.BookingsAPI
	fetch    func(ctx context.Context) ([]models.Booking, error)
	now      func() time.Time

	mu    sync.Mutex
	rows  []BookingRow
	jobID *uuid.UUID
}

func NewRenterBookings(bookings api.BookingsAPI, renterID uint, filters types.BookingQueryFilters) *BookingList {
	return &BookingList{
		bookings: bookings,
		fetch: func(ctx context.Context) ([]models.Booking, error) {
			return bookings.ListBookingsByRenter(ctx, renterID, filters)
		},
		now: time.Now,
	}
}

func NewOwnerBookings(bookings api.BookingsAPI, ownerID uint, filters types.BookingQueryFilters) *BookingList {
	return &BookingList{
		bookings: bookings,
		fetch: func(ctx context.Context) ([]models.Booking, error) {
			return bookings.ListBookingsByOwner(ctx, ownerID, filters)
		},
		now: time.Now,
	}
}

func NewGarmentBookings(bookings api.BookingsAPI, garmentID uint, filters types.BookingQueryFilters) *BookingList {
	return &BookingList{
		bookings: bookings,
		fetch: func(ctx context.Context) ([]models.Booking, error) {
			return bookings.ListBookingsByGarment(ctx, garmentID, filters)
		},
		now: time.Now,
	}
}

// Load fetches the booking snapshot and derives row state once.
func (v *BookingList) Load(ctx context.Context) error {
	items, err := v.fetch(ctx)
	if err != nil {
		return err
	}
	now := v.now()
	rows := make([]BookingRow, 0, len(items))
	for _, b := range items {
		rows = append(rows, v.deriveRow(b, now))
	}
	v.mu.Lock()
	v.rows = rows
	v.mu.Unlock()
	return nil
}

func (v *BookingList) deriveRow(b models.Booking, now time.Time) BookingRow {
	return BookingRow{
		Booking:           b,
		Countdown:         booking.ComputeCountdown(b.BookingDate, b.ReturnDate, now),
		CanCancel:         booking.CanCancel(b, now),
		CanRequestDeposit: booking.CanRequestDeposit(b, now),
	}
}

// Start registers the one-second countdown tick. Idempotent; the tick
// stops itself once the list is empty.
func (v *BookingList) Start() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.jobID != nil {
		return nil
	}
	id, err := lib.CreateIntervalJob(config.CountdownTickInterval(), v.tick)
	if err != nil {
		return err
	}
	v.jobID = id
	return nil
}

// Stop cancels the countdown tick. Safe to call on a stopped view.
func (v *BookingList) Stop() {
	v.mu.Lock()
	id := v.jobID
	v.jobID = nil
	v.mu.Unlock()
	lib.RemoveJob(id)
}

func (v *BookingList) tick() {
	v.mu.Lock()
	if len(v.rows) == 0 {
		id := v.jobID
		v.jobID = nil
		v.mu.Unlock()
		lib.RemoveJob(id)
		return
	}
	now := v.now()
	for i := range v.rows {
		v.rows[i] = v.deriveRow(v.rows[i].Booking, now)
	}
	v.mu.Unlock()
}

// Rows returns a snapshot copy of the current rows.
func (v *BookingList) Rows() []BookingRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]BookingRow, len(v.rows))
	copy(out, v.rows)
	return out
}

// Cancel requests cancellation remotely and removes the row only after the
// server confirms. A failed call leaves the snapshot untouched.
func (v *BookingList) Cancel(ctx context.Context, id uint) error {
	if err := v.bookings.CancelBooking(ctx, id); err != nil {
		log.Printf("[bookings] Could not cancel booking %d: %s\n", id, err.Error())
		return err
	}
	v.removeRow(id)
	return nil
}

// RequestDeposit forwards an owner's deposit request and refreshes the
// affected row's derived state.
func (v *BookingList) RequestDeposit(ctx context.Context, id uint, amount float64, reason string) error {
	body := types.RequestDepositRequestBody{Amount: amount, Reason: reason}
	if err := v.bookings.RequestDeposit(ctx, id, body); err != nil {
		return err
	}
	now := v.now()
	v.mu.Lock()
	for i := range v.rows {
		if v.rows[i].Booking.ID == id {
			v.rows[i].Booking.DepositRequested = true
			v.rows[i].Booking.DepositAmount = amount
			v.rows[i].Booking.DepositReason = reason
			v.rows[i] = v.deriveRow(v.rows[i].Booking, now)
			break
		}
	}
	v.mu.Unlock()
	return nil
}

func (v *BookingList) removeRow(id uint) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].Booking.ID == id {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			return
		}
	}
}
