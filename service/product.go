package service

import (
	"context"
	"log"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"zerodefect-backend/models"
	"zerodefect-backend/store"
)

// Products is the catalog module. Lenient policy: a remote failure keeps
// the local copy and the operation succeeds.
type Products struct {
	base
}

// Load returns the catalog, remote-preferred with cache fallback. An empty
// store is seeded with the default catalog.
func (p *Products) Load(ctx context.Context) []models.Product {
	var items []models.Product
	if err := p.backend.FetchAll(ctx, p.kind, &items); err != nil {
		log.Printf("warn: loading products from store failed, using cache: %v", err)
		items = nil
		p.cache.Get(ctx, p.key, &items)
	} else if p.backend.Remote() {
		putCache(ctx, &p.base, items)
	}
	if len(items) == 0 {
		items = p.seedDefaults(ctx)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (p *Products) seedDefaults(ctx context.Context) []models.Product {
	items := DefaultProducts()
	for _, prod := range items {
		if err := p.backend.Insert(ctx, p.kind, prod); err != nil {
			log.Printf("warn: seeding product %q failed: %v", prod.Name, err)
		}
	}
	putCache(ctx, &p.base, items)
	log.Printf("seeded catalog with %d default products", len(items))
	return items
}

// Sort modes for the storefront grid.
const (
	SortDefault     = "default"
	SortNewest      = "newest"
	SortBestSelling = "bestselling"
)

// Filter narrows by category ("all" or empty passes everything) and applies
// the requested sort mode.
func (p *Products) Filter(items []models.Product, category, sortBy string) []models.Product {
	filtered := make([]models.Product, 0, len(items))
	for _, it := range items {
		if category == "" || category == "all" || it.Category == category {
			filtered = append(filtered, it)
		}
	}
	switch sortBy {
	case SortNewest:
		sort.Slice(filtered, func(i, j int) bool {
			if filtered[i].IsNew != filtered[j].IsNew {
				return filtered[i].IsNew
			}
			return filtered[i].ID > filtered[j].ID
		})
	case SortBestSelling:
		sort.Slice(filtered, func(i, j int) bool {
			if filtered[i].IsBestSeller != filtered[j].IsBestSeller {
				return filtered[i].IsBestSeller
			}
			return filtered[i].ID > filtered[j].ID
		})
	}
	return filtered
}

// Search matches q case-insensitively against name, subtitle and category.
// An empty query returns items unchanged, preserving the original order.
func (p *Products) Search(items []models.Product, q string) []models.Product {
	if q == "" {
		return items
	}
	matched := make([]models.Product, 0, len(items))
	for _, it := range items {
		if containsFold(it.Name, q) || containsFold(it.Subtitle, q) || containsFold(it.Category, q) {
			matched = append(matched, it)
		}
	}
	return matched
}

// Create adds a catalog entry. The id is assigned here when the caller did
// not supply one.
func (p *Products) Create(ctx context.Context, prod models.Product) (models.Product, error) {
	if prod.ID == 0 {
		prod.ID = time.Now().UnixMilli()
	}
	items := append(p.Load(ctx), prod)
	err := p.backend.Insert(ctx, p.kind, prod)
	return prod, afterWrite(ctx, &p.base, err, items)
}

// Save replaces every field of the product matching prod.ID.
func (p *Products) Save(ctx context.Context, prod models.Product) error {
	items := p.Load(ctx)
	found := false
	for i := range items {
		if items[i].ID == prod.ID {
			items[i] = prod
			found = true
			break
		}
	}
	if !found {
		return store.ErrNotFound
	}
	err := p.backend.Update(ctx, p.kind, prod.ID, productPatch(prod))
	return afterWrite(ctx, &p.base, err, items)
}

func (p *Products) Delete(ctx context.Context, id int64) error {
	items := p.Load(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return store.ErrNotFound
	}
	err := p.backend.Delete(ctx, p.kind, id)
	return afterWrite(ctx, &p.base, err, kept)
}

// DecrementStock lowers the stock of the product matching name by qty in
// both representations. Best-effort: under the lenient policy a failed
// remote update leaves the copies diverged, logged but not surfaced.
func (p *Products) DecrementStock(ctx context.Context, name string, qty int) {
	items := p.Load(ctx)
	for i := range items {
		if items[i].Name != name {
			continue
		}
		items[i].Stock -= qty
		err := p.backend.Update(ctx, p.kind, items[i].ID, bson.M{"stock": items[i].Stock})
		if err := afterWrite(ctx, &p.base, err, items); err != nil {
			log.Printf("warn: stock update for %q failed: %v", name, err)
		}
		return
	}
	log.Printf("warn: stock decrement skipped, no product named %q", name)
}

func productPatch(p models.Product) bson.M {
	return bson.M{
		"name":           p.Name,
		"subtitle":       p.Subtitle,
		"category":       p.Category,
		"sub_category":   p.SubCategory,
		"price":          p.Price,
		"stock":          p.Stock,
		"image":          p.Image,
		"images":         p.Images,
		"is_best_seller": p.IsBestSeller,
		"is_new":         p.IsNew,
	}
}
