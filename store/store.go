// Package store exposes the tabular data store behind a small verb set:
// insert, update, delete, fetch-all and fetch-where over named kinds.
// Two implementations exist, one remote (MongoDB) and one local-only on top
// of the cache; exactly one is selected at startup so call sites never
// branch on store availability.
package store

import (
	"context"
	"errors"
)

// Entity kinds, matching the remote table names.
const (
	KindProducts      = "products"
	KindOrders        = "orders"
	KindInquiries     = "inquiries"
	KindReviews       = "reviews"
	KindNotifications = "notifications"
	KindSettings      = "settings"
	KindAdminProfiles = "admin_profiles"
)

// ErrNotFound reports an update or delete that matched no record.
var ErrNotFound = errors.New("store: record not found")

// Backend is the storage verb set. Records carry their identity up front;
// no verb assigns ids. Field names crossing this boundary are snake_case.
// Failures come back as errors, never panics.
type Backend interface {
	// Remote reports whether this backend talks to the remote store.
	Remote() bool
	Insert(ctx context.Context, kind string, record any) error
	// Update merges patch into the record matching id. Patch keys are
	// snake_case; no merge validation is performed.
	Update(ctx context.Context, kind string, id, patch any) error
	Delete(ctx context.Context, kind string, id any) error
	// FetchAll decodes every record of kind into out (a slice pointer).
	// No matches yields an empty slice, not an error. Result order is
	// unspecified.
	FetchAll(ctx context.Context, kind string, out any) error
	FetchWhere(ctx context.Context, kind, field string, value any, out any) error
}

// Watchable is implemented by backends that can push change events.
type Watchable interface {
	Watch(ctx context.Context, kind string, onChange func())
}
