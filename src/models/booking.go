package models

import (
	"blacktie/src/types"
	"time"
)

type Booking struct {
	ID        uint                `json:"id" validate:"required"`
	GarmentID uint                `json:"garment_id,omitempty"`
	RenterID  uint                `json:"renter_id,omitempty"`
	OwnerID   uint                `json:"owner_id,omitempty"`
	Status    types.BookingStatus `json:"status" validate:"required,oneof=PENDING_APPROVAL APPROVED REJECTED PAID COMPLETED CANCELLED"`
	// The returnDate > bookingDate invariant is a creation-time precondition
	// only; records coming back from the server are not re-validated against it.
	BookingDate time.Time `json:"booking_date" validate:"required"`
	ReturnDate  time.Time `json:"return_date" validate:"required"`
	TotalPrice  float64   `json:"total_price"`
	Currency    string    `json:"currency,omitempty"`

	DepositAmount    float64 `json:"deposit_amount,omitempty"`
	DepositRequested bool    `json:"deposit_requested,omitempty"`
	DepositPaid      bool    `json:"deposit_paid,omitempty"`
	DepositReason    string  `json:"deposit_reason,omitempty"`

	DeliveryMethod types.DeliveryMethod `json:"delivery_method,omitempty"`
	DeliveryCode   string               `json:"delivery_code,omitempty"`
	PickupLocation string               `json:"pickup_location,omitempty"`

	RejectionReason string `json:"rejection_reason,omitempty"`

	Garment *Garment `json:"garment,omitempty"`
	Renter  *User    `json:"renter,omitempty"`

	types.Timestamps
}
