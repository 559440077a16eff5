// Package service implements the per-entity data modules shared by the
// storefront and the admin back-office: load with cache fallback, search,
// pagination and mutations under an explicit per-entity write policy.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"zerodefect-backend/cache"
	"zerodefect-backend/store"
)

// Policy decides what a remote write failure means for an entity.
type Policy int

const (
	// PolicyLenient logs the failure and persists the mutated state to
	// the local cache; the operation still succeeds.
	PolicyLenient Policy = iota
	// PolicyStrict fails the operation; nothing is persisted locally.
	// Orders use this.
	PolicyStrict
)

var (
	// ErrRemoteWrite reports a failed write under the strict policy.
	ErrRemoteWrite = errors.New("remote write failed")
	// ErrRemoteUnavailable reports a strict-policy mutation attempted
	// while running on the local-only backend.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	// ErrInvalidTransition reports a status change that would move
	// backwards.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrEmptyCart reports a checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrBadCredentials reports a failed admin login.
	ErrBadCredentials = errors.New("invalid email or password")
)

// ValidationError maps field names to messages, surfaced inline next to the
// offending fields before any persistence is attempted.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e))
}

type base struct {
	backend store.Backend
	cache   *cache.Cache
	policy  Policy
	kind    string
	key     string
}

// Services bundles every entity module over one backend and cache pair.
type Services struct {
	Products      *Products
	Orders        *Orders
	Inquiries     *Inquiries
	Reviews       *Reviews
	Notifications *Notifications
	Settings      *Settings
	Cart          *Cart
	Admins        *Admins
}

func New(backend store.Backend, c *cache.Cache) *Services {
	notify := &Notifications{base: base{backend, c, PolicyLenient, store.KindNotifications, cache.KeyNotifications}}
	return &Services{
		Products:      &Products{base: base{backend, c, PolicyLenient, store.KindProducts, cache.KeyProducts}},
		Orders:        &Orders{base: base{backend, c, PolicyStrict, store.KindOrders, cache.KeyOrders}},
		Inquiries:     &Inquiries{base: base{backend, c, PolicyLenient, store.KindInquiries, cache.KeyInquiries}, notify: notify},
		Reviews:       &Reviews{base: base{backend, c, PolicyLenient, store.KindReviews, cache.KeyReviews}, notify: notify},
		Notifications: notify,
		Settings:      &Settings{base: base{backend, c, PolicyLenient, store.KindSettings, cache.KeySettings}},
		Cart:          &Cart{cache: c},
		Admins:        &Admins{base: base{backend, c, PolicyLenient, store.KindAdminProfiles, cache.KeyAdminProfiles}},
	}
}

// loadList fetches the whole collection for b, falling back to the cached
// copy on store failure. Remote reads that succeed refresh the cache mirror.
// One source wins wholesale; remote and local results are never merged.
func loadList[T any](ctx context.Context, b *base) []T {
	var items []T
	if err := b.backend.FetchAll(ctx, b.kind, &items); err != nil {
		log.Printf("warn: loading %s from store failed, using cache: %v", b.kind, err)
		items = nil
		b.cache.Get(ctx, b.key, &items)
		return items
	}
	if b.backend.Remote() {
		putCache(ctx, b, items)
	}
	return items
}

// afterWrite applies b's policy to the outcome of a remote mutation.
// mutated is the full collection as it looks with the mutation applied.
func afterWrite(ctx context.Context, b *base, err error, mutated any) error {
	if err == nil {
		if b.backend.Remote() {
			putCache(ctx, b, mutated)
		}
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return err
	}
	if b.policy == PolicyStrict {
		return fmt.Errorf("%w: %v", ErrRemoteWrite, err)
	}
	log.Printf("warn: remote write for %s failed, keeping local copy: %v", b.kind, err)
	putCache(ctx, b, mutated)
	return nil
}

func putCache(ctx context.Context, b *base, v any) {
	if err := b.cache.Put(ctx, b.key, v); err != nil {
		log.Printf("warn: cache write for %s failed: %v", b.key, err)
	}
}
