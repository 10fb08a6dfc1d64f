package api

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"blacktie/src/utils"
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// PaymentsAPI is the two-phase payment surface: create an intent, then
// process it. Amounts cross this boundary in minor units only.
type PaymentsAPI interface {
	CreatePaymentIntent(ctx context.Context, bookingID uint, amount float64, currency string) (*models.PaymentIntent, error)
	ProcessPayment(ctx context.Context, intentID string) error
	CreateDepositIntent(ctx context.Context, b models.Booking) (*models.PaymentIntent, error)
}

// CreatePaymentIntent converts the whole-currency amount to minor units at
// this single boundary and tags the intent with a fresh request ID.
func (c *Client) CreatePaymentIntent(ctx context.Context, bookingID uint, amount float64, currency string) (*models.PaymentIntent, error) {
	body := types.CreatePaymentIntentRequestBody{
		BookingID: bookingID,
		Amount:    utils.ToMinorUnits(amount),
		Currency:  currency,
		RequestID: uuid.NewString(),
	}
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	intentURL, err := c.getURL("payments", "intent")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, intentURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParsePaymentIntent(dataField(res))
}

func (c *Client) ProcessPayment(ctx context.Context, intentID string) error {
	body := types.ProcessPaymentRequestBody{PaymentIntentID: intentID}
	if err := validateBody(&body); err != nil {
		return err
	}
	processURL, err := c.getURL("payments", "process")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, processURL, nil, &body)
	return err
}

// CreateDepositIntent feeds a requested deposit through the same
// minor-units conversion as rent payments.
func (c *Client) CreateDepositIntent(ctx context.Context, b models.Booking) (*models.PaymentIntent, error) {
	currency := b.Currency
	if currency == "" {
		currency = "usd"
	}
	body := types.CreatePaymentIntentRequestBody{
		BookingID: b.ID,
		Amount:    utils.ToMinorUnits(b.DepositAmount),
		Currency:  currency,
		RequestID: uuid.NewString(),
	}
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	intentURL, err := c.getURL("bookings", strconv.FormatUint(uint64(b.ID), 10), "deposit", "pay")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, intentURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParsePaymentIntent(dataField(res))
}

var _ PaymentsAPI = (*Client)(nil)
