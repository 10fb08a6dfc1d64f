package api

import (
	"blacktie/src/models"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const unreadCountCacheKey = "notifications:unread"

// NotificationsAPI is the notification surface polled by the
// NotificationCenter view model.
type NotificationsAPI interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id uint) error
	MarkAllNotificationsRead(ctx context.Context) error
}

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	listURL, err := c.getURL("notifications")
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, http.MethodGet, listURL, nil, nil)
	if err != nil {
		return nil, err
	}
	return models.ParseNotificationList(dataField(body))
}

// UnreadCount is cached briefly so badge reads between poll ticks do not
// hit the server.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	if cached, found := c.cache.Get(unreadCountCacheKey); found {
		return cached.(int), nil
	}
	countURL, err := c.getURL("notifications", "unread")
	if err != nil {
		return 0, err
	}
	body, err := c.do(ctx, http.MethodGet, countURL, nil, nil)
	if err != nil {
		return 0, err
	}
	count := int(gjson.GetBytes(body, "count").Int())
	c.cache.Set(unreadCountCacheKey, count, 10*time.Second)
	return count, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id uint) error {
	readURL, err := c.getURL("notifications", strconv.FormatUint(uint64(id), 10), "read")
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, http.MethodPut, readURL, nil, nil); err != nil {
		return err
	}
	c.cache.Delete(unreadCountCacheKey)
	return nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	readURL, err := c.getURL("notifications", "read-all")
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, http.MethodPut, readURL, nil, nil); err != nil {
		return err
	}
	c.cache.Delete(unreadCountCacheKey)
	return nil
}

var _ NotificationsAPI = (*Client)(nil)
