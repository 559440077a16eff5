package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerodefect-backend/cache"
	"zerodefect-backend/models"
)

func TestOrderCreateRemote(t *testing.T) {
	svc, _, local := newRemoteEnv()
	ctx := context.Background()

	order, err := svc.Orders.Create(ctx, models.Order{
		CustomerName:  "Asha Patel",
		CustomerEmail: "asha@example.com",
		ProductName:   "Basmati Rice",
		Quantity:      2,
		UnitPrice:     150,
		TotalAmount:   300,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "ORD-", order.OrderNumber[:4])

	// Remote success mirrors into the local cache.
	var cached []models.Order
	require.True(t, local.Get(ctx, cache.KeyOrders, &cached))
	require.Len(t, cached, 1)
	assert.Equal(t, order.ID, cached[0].ID)
}

func TestOrderCreateStrictFailure(t *testing.T) {
	svc, fake, local := newRemoteEnv()
	ctx := context.Background()

	fake.failWrites = true
	_, err := svc.Orders.Create(ctx, models.Order{CustomerName: "Asha Patel"})
	require.ErrorIs(t, err, ErrRemoteWrite)

	// Strict policy: nothing lands in the local cache either.
	var cached []models.Order
	local.Get(ctx, cache.KeyOrders, &cached)
	assert.Empty(t, cached)
}

func TestOrderCreateLocalOnly(t *testing.T) {
	svc, _ := newLocalEnv()
	_, err := svc.Orders.Create(context.Background(), models.Order{CustomerName: "Asha Patel"})
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestOrderMutationsLocalOnly(t *testing.T) {
	svc, local := newLocalEnv()
	ctx := context.Background()

	// An order synced down before the remote store went away.
	require.NoError(t, local.Put(ctx, cache.KeyOrders, []models.Order{
		{ID: 1, CustomerName: "Asha Patel", Status: models.OrderPending},
	}))

	err := svc.Orders.UpdateStatus(ctx, 1, models.OrderShipped)
	require.ErrorIs(t, err, ErrRemoteUnavailable)

	err = svc.Orders.Delete(ctx, 1)
	require.ErrorIs(t, err, ErrRemoteUnavailable)

	// The cached copy is untouched.
	items := svc.Orders.Load(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, models.OrderPending, items[0].Status)
}

func TestOrderStatusTransitions(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	order, err := svc.Orders.Create(ctx, models.Order{CustomerName: "Asha Patel"})
	require.NoError(t, err)

	// Skipping ahead is allowed.
	require.NoError(t, svc.Orders.UpdateStatus(ctx, order.ID, models.OrderDelivered))

	// Moving back is not.
	err = svc.Orders.UpdateStatus(ctx, order.ID, models.OrderShipped)
	require.ErrorIs(t, err, ErrInvalidTransition)

	// Delivered orders cannot be cancelled.
	err = svc.Orders.UpdateStatus(ctx, order.ID, models.OrderCancelled)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderCancelThenFreeze(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	order, err := svc.Orders.Create(ctx, models.Order{CustomerName: "Asha Patel"})
	require.NoError(t, err)
	require.NoError(t, svc.Orders.UpdateStatus(ctx, order.ID, models.OrderShipped))
	require.NoError(t, svc.Orders.UpdateStatus(ctx, order.ID, models.OrderCancelled))

	err = svc.Orders.UpdateStatus(ctx, order.ID, models.OrderPending)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderSearchAndTally(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	first, err := svc.Orders.Create(ctx, models.Order{CustomerName: "Asha Patel", CustomerEmail: "asha@example.com"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond) // ids are millisecond timestamps
	_, err = svc.Orders.Create(ctx, models.Order{CustomerName: "Ben Okafor", CustomerEmail: "ben@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Orders.UpdateStatus(ctx, first.ID, models.OrderShipped))

	items := svc.Orders.Load(ctx)
	require.Len(t, items, 2)

	matched := svc.Orders.Search(items, "asha")
	require.Len(t, matched, 1)
	assert.Equal(t, "Asha Patel", matched[0].CustomerName)

	counts := svc.Orders.Tally(items)
	assert.Equal(t, 1, counts[models.OrderPending])
	assert.Equal(t, 1, counts[models.OrderShipped])
}
