package api

import (
	"blacktie/src/models"
	"blacktie/src/session"
	"blacktie/src/types"
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// Login exchanges credentials for an identity blob and makes it the active
// session.
func (c *Client) Login(ctx context.Context, body types.LoginRequestBody) (*session.Session, error) {
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	loginURL, err := c.getURL("auth", "login")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, loginURL, nil, &body)
	if err != nil {
		return nil, err
	}
	token := gjson.GetBytes(res, "token").String()
	if token == "" {
		return nil, newRemoteError(http.StatusOK, res)
	}
	user, err := models.ParseUser(dataField(res))
	if err != nil {
		return nil, err
	}
	s := session.Session{Token: token, User: *user}
	if err := session.Save(s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Register(ctx context.Context, body types.RegisterRequestBody) (*models.User, error) {
	if err := validateBody(&body); err != nil {
		return nil, err
	}
	registerURL, err := c.getURL("auth", "register")
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodPost, registerURL, nil, &body)
	if err != nil {
		return nil, err
	}
	return models.ParseUser(dataField(res))
}

// Logout clears the stored identity. Purely local; the token is simply
// forgotten.
func (c *Client) Logout() error {
	return session.Clear()
}
