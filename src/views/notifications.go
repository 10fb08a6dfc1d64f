package views

import (
	"blacktie/src/api"
	"blacktie/src/config"
	"blacktie/src/lib"
	"blacktie/src/models"
	"blacktie/src/types"
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// NotificationCenter polls the notification resource every 30 seconds
// while started and keeps a local snapshot plus unread badge count.
type NotificationCenter struct {
	notifications api.NotificationsAPI

	mu     sync.Mutex
	items  []models.Notification
	unread int
	jobID  *uuid.UUID
}

func NewNotificationCenter(notifications api.NotificationsAPI) *NotificationCenter {
	return &NotificationCenter{notifications: notifications}
}

// Load refreshes the snapshot once.
func (v *NotificationCenter) Load(ctx context.Context) error {
	items, err := v.notifications.ListNotifications(ctx)
	if err != nil {
		return err
	}
	count, err := v.notifications.UnreadCount(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.items = items
	v.unread = count
	v.mu.Unlock()
	return nil
}

// Start registers the 30-second poll. Idempotent. A failed poll is logged
// and the previous snapshot stays visible.
func (v *NotificationCenter) Start() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.jobID != nil {
		return nil
	}
	id, err := lib.CreateIntervalJob(config.NotificationPollInterval(), func() {
		if err := v.Load(context.Background()); err != nil {
			log.Printf("[notifications] poll failed: %s\n", err.Error())
		}
	})
	if err != nil {
		return err
	}
	v.jobID = id
	return nil
}

// Stop cancels the poll. Safe to call on a stopped center.
func (v *NotificationCenter) Stop() {
	v.mu.Lock()
	id := v.jobID
	v.jobID = nil
	v.mu.Unlock()
	lib.RemoveJob(id)
}

func (v *NotificationCenter) Items() []models.Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Notification, len(v.items))
	copy(out, v.items)
	return out
}

func (v *NotificationCenter) Unread() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.unread
}

// MarkRead marks one notification read remotely, then updates the local
// snapshot.
func (v *NotificationCenter) MarkRead(ctx context.Context, id uint) error {
	if err := v.notifications.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	v.mu.Lock()
	for i := range v.items {
		if v.items[i].ID == id && v.items[i].Status != types.NOTIFICATION_READ {
			v.items[i].Status = types.NOTIFICATION_READ
			if v.unread > 0 {
				v.unread--
			}
			break
		}
	}
	v.mu.Unlock()
	return nil
}

// MarkAllRead zeroes the unread badge after the server confirms.
func (v *NotificationCenter) MarkAllRead(ctx context.Context) error {
	if err := v.notifications.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	v.mu.Lock()
	for i := range v.items {
		v.items[i].Status = types.NOTIFICATION_READ
	}
	v.unread = 0
	v.mu.Unlock()
	return nil
}
