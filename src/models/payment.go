package models

import "blacktie/src/types"

// PaymentIntent carries its amount in minor units (cents), per the payment
// gateway convention. Everything else on the wire is whole-currency decimals.
type PaymentIntent struct {
	ID           string `json:"id" validate:"required"`
	BookingID    uint   `json:"booking_id,omitempty"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
	Currency     string `json:"currency,omitempty"`
	Status       string `json:"status,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	RequestID    string `json:"request_id,omitempty"`

	types.Timestamps
}
