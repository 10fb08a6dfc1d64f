package api

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// BookingsAPI is the booking resource surface consumed by the view models.
type BookingsAPI interface {
	ListBookingsByRenter(ctx context.Context, renterID uint, filters types.BookingQueryFilters) ([]models.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID uint, filters types.BookingQueryFilters) ([]models.Booking, error)
	ListBookingsByGarment(ctx context.Context, garmentID uint, filters types.BookingQueryFilters) ([]models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	CreateBooking(ctx context.Context, body types.CreateBookingRequestBody) (*models.Booking, error)
	CancelBooking(ctx context.Context, id uint) error
	ApproveBooking(ctx context.Context, id uint, body types.ApproveBookingRequestBody) (*models.Booking, error)
	RejectBooking(ctx context.Context, id uint, body types.RejectBookingRequestBody) error
	RequestDeposit(ctx context.Context, id uint, body types.RequestDepositRequestBody) error
}

func (c *Client) listBookings(ctx context.Context, query url.Values, filters types.BookingQueryFilters) ([]models.Booking, error) {
	listURL, err := c.getURL("bookings")
	if err != nil {
		return nil, err
	}
	if filters.Status != "" {
		query.Set("status", string(filters.Status))
	}
	body, err := c.do(ctx, http.MethodGet, listURL, query, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseBookingList(dataField(body))
}

func (c *Client) ListBookingsByRenter(ctx context.Context, renterID uint, filters types.BookingQueryFilters) ([]models.Booking, error) {
	query := url.Values{"renter": {strconv.FormatUint(uint64(renterID), 10)}}
	return c.listBookings(ctx, query, filters)
}

func (c *Client) ListBookingsByOwner(ctx context.Context, ownerID uint, filters types.BookingQueryFilters) ([]models.Booking, error) {
	query := url.Values{"owner": {strconv.FormatUint(uint64(ownerID), 10)}}
	return c.listBookings(ctx, query, filters)
}

func (c *Client) ListBookingsByGarment(ctx context.Context, garmentID uint, filters types.BookingQueryFilters) ([]models.Booking, error) {
	query := url.Values{"garment": {strconv.FormatUint(uint64(garmentID), 10)}}
	return c.listBookings(ctx, query, filters)
}

func (c *Client) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	getURL, err := c.getURL("bookings", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, getURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseBooking(dataField(body))
}

// CreateBooking validates the requested window client-side before anything
// goes out; the server remains the authority on the rest of the lifecycle.
func (c *Client) CreateBooking(ctx context.Context, body types.CreateBookingRequestBody) (*models.Booking, error) {
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	createURL, err := c.getURL("bookings")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, createURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParseBooking(dataField(res))
}

func (c *Client) CancelBooking(ctx context.Context, id uint) error {
	cancelURL, err := c.getURL("bookings", strconv.FormatUint(uint64(id), 10), "cancel")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, cancelURL, nil, nil)
	return err
}

// ApproveBooking fixes the delivery method and pickup location at approval
// time; the server responds with the updated record carrying the delivery
// code the renter will consume after payment.
func (c *Client) ApproveBooking(ctx context.Context, id uint, body types.ApproveBookingRequestBody) (*models.Booking, error) {
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	approveURL, err := c.getURL("bookings", strconv.FormatUint(uint64(id), 10), "approve")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPut, approveURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParseBooking(dataField(res))
}

func (c *Client) RejectBooking(ctx context.Context, id uint, body types.RejectBookingRequestBody) error {
	rejectURL, err := c.getURL("bookings", strconv.FormatUint(uint64(id), 10), "reject")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, rejectURL, nil, &body)
	return err
}

// RequestDeposit attaches the deposit sub-flow to a paid or completed
// booking. Eligibility gating lives in the booking package; the server
// re-validates regardless.
func (c *Client) RequestDeposit(ctx context.Context, id uint, body types.RequestDepositRequestBody) error {
	if err := validateBody(&body); err != nil {
		return err
	}
	depositURL, err := c.getURL("bookings", strconv.FormatUint(uint64(id), 10), "deposit")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, depositURL, nil, &body)
	return err
}

var _ BookingsAPI = (*Client)(nil)
