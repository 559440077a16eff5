package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"zerodefect-backend/models"
	"zerodefect-backend/store"
)

// Reviews handles storefront review submission and back-office moderation.
// New reviews are hidden until an admin approves them.
type Reviews struct {
	base
	notify *Notifications
}

// Load returns all reviews newest first, approved or not.
func (r *Reviews) Load(ctx context.Context) []models.Review {
	items := loadList[models.Review](ctx, &r.base)
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}

// Public filters down to approved reviews, the only ones the storefront
// shows.
func (r *Reviews) Public(items []models.Review) []models.Review {
	approved := make([]models.Review, 0, len(items))
	for _, it := range items {
		if it.IsApproved {
			approved = append(approved, it)
		}
	}
	return approved
}

// Create persists a storefront review, unapproved, and raises an admin
// notification.
func (r *Reviews) Create(ctx context.Context, rev models.Review) (models.Review, error) {
	fields := ValidationError{}
	if strings.TrimSpace(rev.ReviewerName) == "" {
		fields["reviewerName"] = "name is required"
	}
	if strings.TrimSpace(rev.ReviewText) == "" {
		fields["reviewText"] = "review text is required"
	}
	if rev.Rating < 1 || rev.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		return models.Review{}, fields
	}
	now := time.Now()
	rev.ID = now.UnixMilli()
	rev.IsApproved = false
	if rev.ReviewerImage == "" {
		rev.ReviewerImage = avatarURL(rev.ReviewerName)
	}
	if rev.ProductName == "" {
		rev.ProductName = "General Review"
	}
	rev.CreatedAt = now
	rev.UpdatedAt = now
	items := append([]models.Review{rev}, r.Load(ctx)...)
	if err := afterWrite(ctx, &r.base, r.backend.Insert(ctx, r.kind, rev), items); err != nil {
		return models.Review{}, err
	}
	r.notify.Add(ctx, models.NotifyReview, "New Review",
		fmt.Sprintf("%s left a %.0f-star review", rev.ReviewerName, rev.Rating))
	return rev, nil
}

// SetApproved toggles a review's storefront visibility.
func (r *Reviews) SetApproved(ctx context.Context, id int64, approved bool) error {
	return r.patch(ctx, id, func(rev *models.Review, now time.Time) bson.M {
		rev.IsApproved = approved
		return bson.M{"is_approved": approved, "updated_at": now}
	})
}

// Reply stores the admin's public reply.
func (r *Reviews) Reply(ctx context.Context, id int64, reply string) error {
	return r.patch(ctx, id, func(rev *models.Review, now time.Time) bson.M {
		rev.AdminReply = reply
		return bson.M{"admin_reply": reply, "updated_at": now}
	})
}

// Edit rewrites the review body and rating.
func (r *Reviews) Edit(ctx context.Context, id int64, text string, rating float64) error {
	return r.patch(ctx, id, func(rev *models.Review, now time.Time) bson.M {
		rev.ReviewText = text
		rev.Rating = rating
		return bson.M{"review_text": text, "rating": rating, "updated_at": now}
	})
}

func (r *Reviews) patch(ctx context.Context, id int64, apply func(*models.Review, time.Time) bson.M) error {
	items := r.Load(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		now := time.Now()
		doc := apply(&items[i], now)
		items[i].UpdatedAt = now
		err := r.backend.Update(ctx, r.kind, id, doc)
		return afterWrite(ctx, &r.base, err, items)
	}
	return store.ErrNotFound
}

func (r *Reviews) Delete(ctx context.Context, id int64) error {
	items := r.Load(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return store.ErrNotFound
	}
	err := r.backend.Delete(ctx, r.kind, id)
	return afterWrite(ctx, &r.base, err, kept)
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=2d5016&color=fff"
}
