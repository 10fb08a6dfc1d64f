package api

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"context"
	"net/http"
	"strconv"
)

func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	profileURL, err := c.getURL("users", "me")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, profileURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseUser(dataField(body))
}

func (c *Client) UpdateProfile(ctx context.Context, body types.UpdateProfileRequestBody) (*models.User, error) {
	profileURL, err := c.getURL("users", "me")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPut, profileURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParseUser(dataField(res))
}

// SetRole requests a role change for the current user (renter turning
// owner to list garments).
func (c *Client) SetRole(ctx context.Context, body types.SetRoleRequestBody) error {
	if err := validateBody(&body); err != nil {
		return err
	}
	roleURL, err := c.getURL("users", "me", "role")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, roleURL, nil, &body)
	return err
}

func (c *Client) GetReputation(ctx context.Context, userID uint) (*models.Reputation, error) {
	repURL, err := c.getURL("users", strconv.FormatUint(uint64(userID), 10), "reputation")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, repURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseReputation(dataField(body))
}
