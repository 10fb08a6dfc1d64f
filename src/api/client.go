package api

import (
	"blacktie/src/config"
	"blacktie/src/lib"
	"blacktie/src/session"
	"blacktie/src/types"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/patrickmn/go-cache"
	"github.com/tidwall/gjson"
)

// Client is the typed REST client for the BlackTie API. Every call is
// fire-once: nothing is retried, nothing is deduplicated, and a failed
// request leaves all local state unchanged.
type Client struct {
	baseURL string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient() *Client {
	return NewClientWithBaseURL(config.APIBaseURL())
}

func NewClientWithBaseURL(baseURL string) *Client {
	client := &http.Client{
		Timeout: config.RequestTimeout(),
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		cache:   lib.GetCache(),
	}
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}
	return clientURL, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s, err := session.Current(); err == nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
}

// do performs one request and hands back the response body. Non-2xx and
// transport failures both come back as *Error.
func (c *Client) do(ctx context.Context, method, reqURL string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	c.setHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, newRemoteError(res.StatusCode, bodyBytes)
	}
	if readErr != nil {
		return nil, newNetworkError(readErr)
	}
	return bodyBytes, nil
}

// dataField unwraps the standard {"data": ...} response envelope.
func dataField(body []byte) []byte {
	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		return body
	}
	return []byte(data.Raw)
}

// validateBody applies client-side preconditions before a request goes out.
func validateBody(body any) error {
	if err := types.GetValidator().Struct(body); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}
