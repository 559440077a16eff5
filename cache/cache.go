// Package cache is the local persisted key/value cache: one fixed key per
// entity kind, values JSON-serialized. It is the fallback store when the
// remote backend is down and the only home of cart and wishlist state.
package cache

import (
	"context"
	"encoding/json"
	"log"
)

// Fixed cache keys, one per entity kind.
const (
	KeyProducts      = "zerodefect:products"
	KeyOrders        = "zerodefect:orders"
	KeyInquiries     = "zerodefect:inquiries"
	KeyReviews       = "zerodefect:reviews"
	KeyNotifications = "zerodefect:notifications"
	KeySettings      = "zerodefect:settings"
	KeyCart          = "zerodefect:cart"
	KeyWishlist      = "zerodefect:wishlist"
	KeyAdminProfiles = "zerodefect:admin_profiles"
)

// KV is the raw key/value storage under the cache.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Cache serializes values to JSON on top of a KV.
type Cache struct {
	kv KV
}

func New(kv KV) *Cache {
	return &Cache{kv: kv}
}

// Get deserializes the value under key into out. Missing keys and corrupt
// payloads both report false: corrupt cache contents are logged and treated
// as an empty collection, never an error.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	raw, ok, err := c.kv.Get(ctx, key)
	if err != nil {
		log.Printf("warn: cache read failed for %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("warn: discarding corrupt cache entry %s: %v", key, err)
		return false
	}
	return true
}

// Put serializes v under key.
func (c *Cache) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, key, string(raw))
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.kv.Del(ctx, key)
}
