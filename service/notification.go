package service

import (
	"context"
	"log"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"zerodefect-backend/models"
	"zerodefect-backend/store"
	"zerodefect-backend/utils"
)

// Keep only the newest notifications when storing locally; the remote store
// is left unbounded.
const notificationCap = 50

// Notifications is the admin notification feed. Other modules append to it
// when storefront events happen.
type Notifications struct {
	base
}

// Load returns notifications newest first.
func (n *Notifications) Load(ctx context.Context) []models.Notification {
	items := loadList[models.Notification](ctx, &n.base)
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items
}

// Unread counts the notifications not yet marked read.
func (n *Notifications) Unread(items []models.Notification) int {
	count := 0
	for _, it := range items {
		if !it.IsRead {
			count++
		}
	}
	return count
}

// Add appends a notification. Failures are logged, never surfaced; a lost
// notification must not fail the event that caused it.
func (n *Notifications) Add(ctx context.Context, typ, title, message string) {
	item := models.Notification{
		ID:        utils.NewID(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Icon:      models.IconForType(typ),
		CreatedAt: time.Now(),
	}
	items := append([]models.Notification{item}, n.Load(ctx)...)
	capped := !n.backend.Remote() && len(items) > notificationCap
	if capped {
		items = items[:notificationCap]
	}
	err := n.backend.Insert(ctx, n.kind, item)
	if err == nil && capped {
		// The local backend appended past the cap; rewrite the trimmed list.
		putCache(ctx, &n.base, items)
		return
	}
	if err := afterWrite(ctx, &n.base, err, items); err != nil {
		log.Printf("warn: notification %q dropped: %v", title, err)
	}
}

// MarkRead flags one notification as read.
func (n *Notifications) MarkRead(ctx context.Context, id string) error {
	items := n.Load(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].IsRead = true
		err := n.backend.Update(ctx, n.kind, id, bson.M{"is_read": true})
		return afterWrite(ctx, &n.base, err, items)
	}
	return store.ErrNotFound
}

// MarkAllRead flags every notification as read.
func (n *Notifications) MarkAllRead(ctx context.Context) error {
	items := n.Load(ctx)
	var firstErr error
	for i := range items {
		if items[i].IsRead {
			continue
		}
		items[i].IsRead = true
		if err := n.backend.Update(ctx, n.kind, items[i].ID, bson.M{"is_read": true}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return afterWrite(ctx, &n.base, firstErr, items)
}

// Clear deletes every notification.
func (n *Notifications) Clear(ctx context.Context) error {
	items := n.Load(ctx)
	var firstErr error
	for _, it := range items {
		if err := n.backend.Delete(ctx, n.kind, it.ID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return afterWrite(ctx, &n.base, firstErr, []models.Notification{})
}
