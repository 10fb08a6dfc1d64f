package api

import (
	"blacktie/src/models"
	"blacktie/src/types"
	"context"
	"net/http"
	"strconv"
)

// AdminAPI is the admin resource surface: a metrics snapshot plus user and
// garment moderation.
type AdminAPI interface {
	AdminMetrics(ctx context.Context) (*models.AdminMetrics, error)
	AdminListUsers(ctx context.Context) ([]models.User, error)
	AdminSetUserStatus(ctx context.Context, id uint, body types.SetUserStatusRequestBody) error
	AdminSetUserRole(ctx context.Context, id uint, body types.SetRoleRequestBody) error
	AdminDeleteUser(ctx context.Context, id uint) error
	AdminListGarments(ctx context.Context) ([]models.Garment, error)
	AdminDeleteGarment(ctx context.Context, id uint) error
}

func (c *Client) AdminMetrics(ctx context.Context) (*models.AdminMetrics, error) {
	metricsURL, err := c.getURL("admin", "metrics")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, metricsURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseAdminMetrics(dataField(body))
}

func (c *Client) AdminListUsers(ctx context.Context) ([]models.User, error) {
	usersURL, err := c.getURL("admin", "users")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, usersURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseUserList(dataField(body))
}

func (c *Client) AdminSetUserStatus(ctx context.Context, id uint, body types.SetUserStatusRequestBody) error {
	if err := validateBody(&body); err != nil {
		return err
	}
	statusURL, err := c.getURL("admin", "users", strconv.FormatUint(uint64(id), 10), "status")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, statusURL, nil, &body)
	return err
}

func (c *Client) AdminSetUserRole(ctx context.Context, id uint, body types.SetRoleRequestBody) error {
	if err := validateBody(&body); err != nil {
		return err
	}
	roleURL, err := c.getURL("admin", "users", strconv.FormatUint(uint64(id), 10), "role")
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPut, roleURL, nil, &body)
	return err
}

func (c *Client) AdminDeleteUser(ctx context.Context, id uint) error {
	deleteURL, err := c.getURL("admin", "users", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, deleteURL, nil, nil)
	return err
}

func (c *Client) AdminListGarments(ctx context.Context) ([]models.Garment, error) {
	garmentsURL, err := c.getURL("admin", "garments")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, garmentsURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseGarmentList(dataField(body))
}

func (c *Client) AdminDeleteGarment(ctx context.Context, id uint) error {
	deleteURL, err := c.getURL("admin", "garments", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodDelete, deleteURL, nil, nil)
	return err
}

var _ AdminAPI = (*Client)(nil)
