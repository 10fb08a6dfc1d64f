package models

import "blacktie/src/types"

type Review struct {
	ID        uint   `json:"id" validate:"required"`
	BookingID uint   `json:"booking_id,omitempty"`
	GarmentID uint   `json:"garment_id,omitempty"`
	AuthorID  uint   `json:"author_id,omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`

	Author *User `json:"author,omitempty"`

	types.Timestamps
}
