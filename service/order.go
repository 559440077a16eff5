package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"zerodefect-backend/models"
	"zerodefect-backend/store"
)

// Orders is the only strict-policy module: an order that the remote store
// did not accept does not exist.
type Orders struct {
	base
}

// Load returns orders newest first.
func (o *Orders) Load(ctx context.Context) []models.Order {
	items := loadList[models.Order](ctx, &o.base)
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}

// Create persists a new order. Fails with ErrRemoteUnavailable when running
// on the local-only backend and with ErrRemoteWrite when the remote store
// rejects the insert; in both cases nothing is written anywhere.
func (o *Orders) Create(ctx context.Context, order models.Order) (models.Order, error) {
	if !o.backend.Remote() {
		return models.Order{}, ErrRemoteUnavailable
	}
	now := time.Now()
	order.ID = now.UnixMilli()
	order.OrderNumber = fmt.Sprintf("ORD-%d", order.ID)
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	items := append([]models.Order{order}, o.Load(ctx)...)
	if err := afterWrite(ctx, &o.base, o.backend.Insert(ctx, o.kind, order), items); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus moves an order forward, or cancels it from any non-terminal
// state. Backwards moves and changes to delivered or cancelled orders fail
// with ErrInvalidTransition. Like every order mutation it requires the
// remote backend.
func (o *Orders) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !o.backend.Remote() {
		return ErrRemoteUnavailable
	}
	items := o.Load(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if !validOrderTransition(items[i].Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, items[i].Status, status)
		}
		now := time.Now()
		items[i].Status = status
		items[i].UpdatedAt = now
		err := o.backend.Update(ctx, o.kind, id, bson.M{"status": status, "updated_at": now})
		return afterWrite(ctx, &o.base, err, items)
	}
	return store.ErrNotFound
}

func (o *Orders) Delete(ctx context.Context, id int64) error {
	if !o.backend.Remote() {
		return ErrRemoteUnavailable
	}
	items := o.Load(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return store.ErrNotFound
	}
	err := o.backend.Delete(ctx, o.kind, id)
	return afterWrite(ctx, &o.base, err, kept)
}

// Search matches q against order number, customer name and email.
func (o *Orders) Search(items []models.Order, q string) []models.Order {
	if q == "" {
		return items
	}
	matched := make([]models.Order, 0, len(items))
	for _, it := range items {
		if containsFold(it.OrderNumber, q) || containsFold(it.CustomerName, q) || containsFold(it.CustomerEmail, q) {
			matched = append(matched, it)
		}
	}
	return matched
}

// Tally counts orders per status for the dashboard cards.
func (o *Orders) Tally(items []models.Order) map[string]int {
	counts := map[string]int{
		models.OrderPending:   0,
		models.OrderShipped:   0,
		models.OrderDelivered: 0,
		models.OrderCancelled: 0,
	}
	for _, it := range items {
		counts[it.Status]++
	}
	return counts
}
