package models

import (
	"blacktie/src/types"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrMalformedPayload = errors.New("malformed server payload")

// Server payloads are loosely shaped. Decode gates on valid JSON, unmarshals
// into the typed record and validates it before anything reaches view logic.
func decode[T any](data []byte) (*T, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedPayload
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	if err := types.GetValidator().Struct(&out); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	return &out, nil
}

func decodeList[T any](data []byte) ([]T, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedPayload
	}
	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	v := types.GetValidator()
	for i := range items {
		if err := v.Struct(&items[i]); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
		}
	}
	return items, nil
}

func ParseBooking(data []byte) (*Booking, error)      { return decode[Booking](data) }
func ParseBookingList(data []byte) ([]Booking, error) { return decodeList[Booking](data) }

func ParseGarment(data []byte) (*Garment, error)      { return decode[Garment](data) }
func ParseGarmentList(data []byte) ([]Garment, error) { return decodeList[Garment](data) }

func ParseUser(data []byte) (*User, error)      { return decode[User](data) }
func ParseUserList(data []byte) ([]User, error) { return decodeList[User](data) }
func ParseReputation(data []byte) (*Reputation, error) {
	return decode[Reputation](data)
}

func ParseReview(data []byte) (*Review, error)      { return decode[Review](data) }
func ParseReviewList(data []byte) ([]Review, error) { return decodeList[Review](data) }

func ParseNotificationList(data []byte) ([]Notification, error) {
	return decodeList[Notification](data)
}

func ParseAdminMetrics(data []byte) (*AdminMetrics, error) {
	return decode[AdminMetrics](data)
}

func ParsePaymentIntent(data []byte) (*PaymentIntent, error) {
	return decode[PaymentIntent](data)
}
