package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type Timestamps struct {
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type BookingStatus string

const (
	BOOKING_PENDING_APPROVAL BookingStatus = "PENDING_APPROVAL"
	BOOKING_APPROVED         BookingStatus = "APPROVED"
	BOOKING_REJECTED         BookingStatus = "REJECTED"
	BOOKING_PAID             BookingStatus = "PAID"
	BOOKING_COMPLETED        BookingStatus = "COMPLETED"
	BOOKING_CANCELLED        BookingStatus = "CANCELLED"
)

type DeliveryMethod string

const (
	DELIVERY_PICKUP   DeliveryMethod = "PICKUP"
	DELIVERY_SHIPPING DeliveryMethod = "SHIPPING"
)

type UserRole string

const (
	ROLE_RENTER UserRole = "renter"
	ROLE_OWNER  UserRole = "owner"
	ROLE_ADMIN  UserRole = "admin"
)

type UserStatus string

const (
	USER_ACTIVE    UserStatus = "active"
	USER_SUSPENDED UserStatus = "suspended"
)

type NotificationStatus string

const (
	NOTIFICATION_UNREAD NotificationStatus = "unread"
	NOTIFICATION_READ   NotificationStatus = "read"
)

type Metadata map[string]any

type CreateBookingRequestBody struct {
	GarmentID   uint    `json:"garment_id" validate:"required"`
	BookingDate string  `json:"booking_date" validate:"required,bookabledate" time_format:"2006-01-02 15:04:05 -07:00"`
	ReturnDate  string  `json:"return_date" validate:"required,bookabledate,gtdate=BookingDate" time_format:"2006-01-02 15:04:05 -07:00"`
	TotalPrice  float64 `json:"total_price" validate:"required,gt=0"`
}

type ApproveBookingRequestBody struct {
	DeliveryMethod DeliveryMethod `json:"delivery_method" validate:"required,oneof=PICKUP SHIPPING"`
	PickupLocation string         `json:"pickup_location" validate:"required_if=DeliveryMethod PICKUP"`
}

type RejectBookingRequestBody struct {
	Reason string `json:"reason,omitempty"`
}

type RequestDepositRequestBody struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Reason string  `json:"reason" validate:"required"`
}

type CreatePaymentIntentRequestBody struct {
	BookingID uint   `json:"booking_id" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Currency  string `json:"currency" validate:"required"`
	RequestID string `json:"request_id" validate:"required"`
}

type ProcessPaymentRequestBody struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

type CreateReviewRequestBody struct {
	BookingID uint   `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
}

type CreateListingRequestBody struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required"`
	Size        string  `json:"size,omitempty"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`
	Deposit     float64 `json:"deposit,omitempty" validate:"omitempty,gt=0"`
}

type UpdateProfileRequestBody struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Language string `json:"language,omitempty"`
}

type SetRoleRequestBody struct {
	Role UserRole `json:"role" validate:"required,oneof=renter owner admin"`
}

type SetUserStatusRequestBody struct {
	Status UserStatus `json:"status" validate:"required,oneof=active suspended"`
}

type LoginRequestBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequestBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type BookingQueryFilters struct {
	Status BookingStatus
}

type GarmentQueryFilters struct {
	Category string
	Size     string
	MaxPrice float64
	Search   string
}

type Claims struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}
