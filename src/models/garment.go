package models

import "blacktie/src/types"

type Garment struct {
	ID          uint    `json:"id" validate:"required"`
	Name        string  `json:"name,omitempty"`
	Slug        string  `json:"slug,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Size        string  `json:"size,omitempty"`
	PricePerDay float64 `json:"price_per_day,omitempty"`
	Deposit     float64 `json:"deposit,omitempty"`
	OwnerID     uint    `json:"owner_id,omitempty"`
	Available   bool    `json:"available,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`

	Owner *User `json:"owner,omitempty"`

	types.Timestamps
}
