package models

import "blacktie/src/types"

type Notification struct {
	ID          uint                     `json:"id" validate:"required"`
	UserID      uint                     `json:"user_id,omitempty"`
	Title       string                   `json:"title,omitempty"`
	Description string                   `json:"description,omitempty"`
	Type        string                   `json:"type,omitempty"`
	Status      types.NotificationStatus `json:"status,omitempty"`
	ActionData  types.Metadata           `json:"action_data,omitempty"`

	types.Timestamps
}
