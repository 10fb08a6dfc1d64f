package models

import "blacktie/src/types"

type User struct {
	ID       uint             `json:"id" validate:"required"`
	Name     string           `json:"name,omitempty"`
	Email    string           `json:"email,omitempty"`
	Role     types.UserRole   `json:"role,omitempty"`
	Status   types.UserStatus `json:"status,omitempty"`
	Phone    string           `json:"phone,omitempty"`
	Address  string           `json:"address,omitempty"`
	Bio      string           `json:"bio,omitempty"`
	Language string           `json:"language,omitempty"`

	types.Timestamps
}

type Reputation struct {
	UserID        uint    `json:"user_id" validate:"required"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	RentalsDone   int     `json:"rentals_done"`
}
