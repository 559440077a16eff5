package service

import (
	"context"
	"log"

	"zerodefect-backend/cache"
	"zerodefect-backend/models"
)

// Cart holds the storefront cart and wishlist. Both are cache-only: they
// never touch the store backend and survive a restart only as long as the
// cache does.
type Cart struct {
	cache *cache.Cache
}

// Items returns the cart contents.
func (c *Cart) Items(ctx context.Context) []models.CartItem {
	var items []models.CartItem
	c.cache.Get(ctx, cache.KeyCart, &items)
	return items
}

// Add puts qty of a product in the cart, merging with an existing line of
// the same name.
func (c *Cart) Add(ctx context.Context, name string, price, qty int) []models.CartItem {
	if qty < 1 {
		qty = 1
	}
	items := c.Items(ctx)
	merged := false
	for i := range items {
		if items[i].Name == name {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{Name: name, Price: price, Quantity: qty})
	}
	c.put(ctx, cache.KeyCart, items)
	return items
}

// SetQuantity changes a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(ctx context.Context, name string, qty int) []models.CartItem {
	items := c.Items(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.Name == name {
			if qty <= 0 {
				continue
			}
			it.Quantity = qty
		}
		kept = append(kept, it)
	}
	c.put(ctx, cache.KeyCart, kept)
	return kept
}

// Remove drops a line from the cart.
func (c *Cart) Remove(ctx context.Context, name string) []models.CartItem {
	return c.SetQuantity(ctx, name, 0)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) {
	if err := c.cache.Delete(ctx, cache.KeyCart); err != nil {
		log.Printf("warn: clearing cart failed: %v", err)
	}
}

// WishlistIDs returns the wishlisted product ids.
func (c *Cart) WishlistIDs(ctx context.Context) []int64 {
	var ids []int64
	c.cache.Get(ctx, cache.KeyWishlist, &ids)
	return ids
}

// ToggleWishlist adds the product id when absent and removes it when
// present. Returns the new list and whether the id is now in it.
func (c *Cart) ToggleWishlist(ctx context.Context, id int64) ([]int64, bool) {
	ids := c.WishlistIDs(ctx)
	kept := ids[:0]
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, id)
	}
	c.put(ctx, cache.KeyWishlist, kept)
	return kept, !removed
}

func (c *Cart) put(ctx context.Context, key string, v any) {
	if err := c.cache.Put(ctx, key, v); err != nil {
		log.Printf("warn: cache write for %s failed: %v", key, err)
	}
}
