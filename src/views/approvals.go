package views

import (
	"blacktie/src/api"
	"blacktie/src/models"
	"blacktie/src/types"
	"blacktie/src/utils"
	"context"
	"log"
	"sync"
)

// PendingApprovals is the owner-side queue of bookings awaiting a decision.
type PendingApprovals struct {
	bookings api.BookingsAPI
	ownerID  uint

	mu    sync.Mutex
	queue []models.Booking
}

func NewPendingApprovals(bookings api.BookingsAPI, ownerID uint) *PendingApprovals {
	return &PendingApprovals{bookings: bookings, ownerID: ownerID}
}

func (v *PendingApprovals) Load(ctx context.Context) error {
	items, err := v.bookings.ListBookingsByOwner(ctx, v.ownerID, types.BookingQueryFilters{
		Status: types.BOOKING_PENDING_APPROVAL,
	})
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.queue = items
	v.mu.Unlock()
	return nil
}

func (v *PendingApprovals) Queue() []models.Booking {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Booking, len(v.queue))
	copy(out, v.queue)
	return out
}

// Approve fixes delivery method and pickup location for a booking. On
// success the row leaves the queue and the delivery code comes back as a
// QR image for handover.
func (v *PendingApprovals) Approve(ctx context.Context, id uint, body types.ApproveBookingRequestBody) (*models.Booking, error) {
	updated, err := v.bookings.ApproveBooking(ctx, id, body)
	if err != nil {
		return nil, err
	}
	v.remove(id)
	if updated.DeliveryCode != "" {
		if _, err := utils.SaveDeliveryCodeQR(updated.ID, updated.DeliveryCode); err != nil {
			log.Printf("[approvals] Could not render delivery code for booking %d: %s\n", updated.ID, err.Error())
		}
	}
	return updated, nil
}

// Reject declines a booking with an optional reason. The row leaves the
// queue only after the server confirms.
func (v *PendingApprovals) Reject(ctx context.Context, id uint, reason string) error {
	if err := v.bookings.RejectBooking(ctx, id, types.RejectBookingRequestBody{Reason: reason}); err != nil {
		return err
	}
	v.remove(id)
	return nil
}

func (v *PendingApprovals) remove(id uint) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.queue {
		if v.queue[i].ID == id {
			v.queue = append(v.queue[:i], v.queue[i+1:]...)
			return
		}
	}
}
