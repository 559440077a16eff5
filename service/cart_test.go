package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"zerodefect-backend/models"
)

func TestCartAddMergesLines(t *testing.T) {
	svc, _ := newLocalEnv()
	ctx := context.Background()

	svc.Cart.Add(ctx, "Basmati Rice", 150, 1)
	items := svc.Cart.Add(ctx, "Basmati Rice", 150, 2)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 450, models.CartTotal(items))
}

func TestCartSetQuantity(t *testing.T) {
	svc, _ := newLocalEnv()
	ctx := context.Background()

	svc.Cart.Add(ctx, "Basmati Rice", 150, 2)
	svc.Cart.Add(ctx, "Cloves", 900, 1)

	items := svc.Cart.SetQuantity(ctx, "Basmati Rice", 5)
	assert.Equal(t, 5, items[0].Quantity)

	items = svc.Cart.SetQuantity(ctx, "Cloves", 0)
	assert.Len(t, items, 1, "zero quantity removes the line")

	items = svc.Cart.Remove(ctx, "Basmati Rice")
	assert.Empty(t, items)
}

func TestCartClear(t *testing.T) {
	svc, _ := newLocalEnv()
	ctx := context.Background()

	svc.Cart.Add(ctx, "Basmati Rice", 150, 2)
	svc.Cart.Clear(ctx)
	assert.Empty(t, svc.Cart.Items(ctx))
}

func TestWishlistToggle(t *testing.T) {
	svc, _ := newLocalEnv()
	ctx := context.Background()

	ids, added := svc.Cart.ToggleWishlist(ctx, 7)
	assert.True(t, added)
	assert.Equal(t, []int64{7}, ids)

	ids, added = svc.Cart.ToggleWishlist(ctx, 7)
	assert.False(t, added)
	assert.Empty(t, ids)
}
