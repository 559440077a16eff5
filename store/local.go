package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zerodefect-backend/cache"
)

// Local is the local-only backend used when the remote store never became
// ready. It keeps whole collections as JSON arrays in the cache, under the
// same per-kind keys the lenient write fallback uses, so both paths read and
// write one representation.
type Local struct {
	cache *cache.Cache
}

func NewLocal(c *cache.Cache) *Local {
	return &Local{cache: c}
}

func (l *Local) Remote() bool { return false }

// CacheKeyFor maps a kind to its fixed cache key.
func CacheKeyFor(kind string) string {
	switch kind {
	case KindProducts:
		return cache.KeyProducts
	case KindOrders:
		return cache.KeyOrders
	case KindInquiries:
		return cache.KeyInquiries
	case KindReviews:
		return cache.KeyReviews
	case KindNotifications:
		return cache.KeyNotifications
	case KindSettings:
		return cache.KeySettings
	case KindAdminProfiles:
		return cache.KeyAdminProfiles
	}
	return "zerodefect:" + kind
}

func (l *Local) Insert(ctx context.Context, kind string, record any) error {
	rec, err := toDocument(record)
	if err != nil {
		return err
	}
	records := l.load(ctx, kind)
	records = append([]map[string]any{rec}, records...)
	return l.save(ctx, kind, records)
}

func (l *Local) Update(ctx context.Context, kind string, id, patch any) error {
	doc, err := toDocument(patch)
	if err != nil {
		return err
	}
	records := l.load(ctx, kind)
	for _, rec := range records {
		if sameID(rec["id"], id) {
			for k, v := range doc {
				rec[camelize(k)] = v
			}
			return l.save(ctx, kind, records)
		}
	}
	return ErrNotFound
}

func (l *Local) Delete(ctx context.Context, kind string, id any) error {
	records := l.load(ctx, kind)
	kept := records[:0]
	for _, rec := range records {
		if !sameID(rec["id"], id) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	return l.save(ctx, kind, kept)
}

func (l *Local) FetchAll(ctx context.Context, kind string, out any) error {
	return decodeInto(l.load(ctx, kind), out)
}

func (l *Local) FetchWhere(ctx context.Context, kind, field string, value any, out any) error {
	name := camelize(field)
	var matched []map[string]any
	for _, rec := range l.load(ctx, kind) {
		if sameID(rec[name], value) {
			matched = append(matched, rec)
		}
	}
	return decodeInto(matched, out)
}

func (l *Local) load(ctx context.Context, kind string) []map[string]any {
	var raw json.RawMessage
	if ok := l.cache.Get(ctx, CacheKeyFor(kind), &raw); !ok {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil
	}
	return records
}

func (l *Local) save(ctx context.Context, kind string, records []map[string]any) error {
	return l.cache.Put(ctx, CacheKeyFor(kind), records)
}

// toDocument flattens a record or patch to a generic map. Numbers are kept
// as json.Number so millisecond ids survive the round trip exactly.
func toDocument(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeInto(records []map[string]any, out any) error {
	if records == nil {
		records = []map[string]any{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func sameID(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// camelize converts a snake_case boundary field name to the camelCase name
// used in cached JSON, e.g. is_best_seller -> isBestSeller.
func camelize(field string) string {
	parts := strings.Split(field, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
