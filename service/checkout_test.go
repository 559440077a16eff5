package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerodefect-backend/cache"
	"zerodefect-backend/models"
)

func TestCheckout(t *testing.T) {
	svc, fake, local := newRemoteEnv()
	ctx := context.Background()

	svc.Products.Load(ctx) // seeds the default catalog
	svc.Cart.Add(ctx, "Basmati Rice", 150, 2)

	order, err := svc.Checkout(ctx, CheckoutRequest{
		Name:    "Asha Patel",
		Email:   "asha@example.com",
		Address: "12 Harbour Road, Mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, 300, order.TotalAmount)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, "Basmati Rice", order.ProductName)
	assert.Equal(t, "not-specified", order.PaymentMethod)

	// Stock dropped by two in the remote store and the cache mirror alike.
	var remote []models.Product
	require.NoError(t, fake.FetchAll(ctx, "products", &remote))
	assert.Equal(t, 998, stockOf(t, remote, "Basmati Rice"))

	var mirrored []models.Product
	require.True(t, local.Get(ctx, cache.KeyProducts, &mirrored))
	assert.Equal(t, 998, stockOf(t, mirrored, "Basmati Rice"))

	// The cart is emptied and a notification raised.
	assert.Empty(t, svc.Cart.Items(ctx))
	notes := svc.Notifications.Load(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotifyOrder, notes[0].Type)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		Name:    "Asha Patel",
		Email:   "asha@example.com",
		Address: "12 Harbour Road, Mumbai",
	})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutValidation(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	svc.Cart.Add(context.Background(), "Basmati Rice", 150, 1)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{Email: "bad"})
	var fields ValidationError
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "address")
}

func TestCheckoutStrictOrderFailure(t *testing.T) {
	svc, fake, _ := newRemoteEnv()
	ctx := context.Background()

	svc.Products.Load(ctx)
	svc.Cart.Add(ctx, "Basmati Rice", 150, 2)

	fake.failWrites = true
	_, err := svc.Checkout(ctx, CheckoutRequest{
		Name:    "Asha Patel",
		Email:   "asha@example.com",
		Address: "12 Harbour Road, Mumbai",
	})
	require.ErrorIs(t, err, ErrRemoteWrite)

	// The order failed before any side effects: cart intact, stock intact.
	assert.Len(t, svc.Cart.Items(ctx), 1)
	fake.failWrites = false
	var remote []models.Product
	require.NoError(t, fake.FetchAll(ctx, "products", &remote))
	assert.Equal(t, 1000, stockOf(t, remote, "Basmati Rice"))
}

func stockOf(t *testing.T, items []models.Product, name string) int {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it.Stock
		}
	}
	t.Fatalf("product %q not found", name)
	return 0
}
