package api

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"context"
	"net/http"
	"strconv"
)

func (c *Client) CreateReview(ctx context.Context, body types.CreateReviewRequestBody) (*models.Review, error) {
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	createURL, err := c.getURL("reviews")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, createURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParseReview(dataField(res))
}

func (c *Client) ReviewsByBooking(ctx context.Context, bookingID uint) ([]models.Review, error) {
	listURL, err := c.getURL("bookings", strconv.FormatUint(uint64(bookingID), 10), "reviews")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, listURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseReviewList(dataField(body))
}

func (c *Client) ReviewsByGarment(ctx context.Context, garmentID uint) ([]models.Review, error) {
	listURL, err := c.getURL("garments", strconv.FormatUint(uint64(garmentID), 10), "reviews")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, listURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseReviewList(dataField(body))
}
