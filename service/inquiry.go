package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"zerodefect-backend/models"
	"zerodefect-backend/store"
)

// Inquiries handles buyer inquiries from the storefront contact form and
// their lifecycle in the back-office.
type Inquiries struct {
	base
	notify *Notifications
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Load returns inquiries newest first.
func (q *Inquiries) Load(ctx context.Context) []models.Inquiry {
	items := loadList[models.Inquiry](ctx, &q.base)
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}

// Validate checks the storefront form fields. Runs before any persistence.
func (q *Inquiries) Validate(in models.Inquiry) error {
	fields := ValidationError{}
	if strings.TrimSpace(in.FullName) == "" {
		fields["fullName"] = "full name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "email is required"
	} else if !emailPattern.MatchString(in.Email) {
		fields["email"] = "email is not valid"
	}
	if strings.TrimSpace(in.Country) == "" {
		fields["country"] = "country is required"
	}
	if strings.TrimSpace(in.Product) == "" {
		fields["product"] = "product is required"
	}
	if strings.TrimSpace(in.Quantity) == "" {
		fields["quantity"] = "quantity is required"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Create validates and persists a new inquiry and raises an admin
// notification.
func (q *Inquiries) Create(ctx context.Context, in models.Inquiry) (models.Inquiry, error) {
	if err := q.Validate(in); err != nil {
		return models.Inquiry{}, err
	}
	now := time.Now()
	in.ID = now.UnixMilli()
	in.InquiryNumber = fmt.Sprintf("INQ-%d", in.ID)
	in.Status = models.InquiryPending
	if in.Priority == "" {
		in.Priority = "medium"
	}
	in.CreatedAt = now
	in.UpdatedAt = now
	items := append([]models.Inquiry{in}, q.Load(ctx)...)
	if err := afterWrite(ctx, &q.base, q.backend.Insert(ctx, q.kind, in), items); err != nil {
		return models.Inquiry{}, err
	}
	q.notify.Add(ctx, models.NotifyInquiry, "New Inquiry",
		fmt.Sprintf("%s from %s asked about %s", in.FullName, in.Country, in.Product))
	return in, nil
}

// UpdateStatus moves an inquiry forward through pending, reviewed,
// completed. Skipping a stage is fine; going back is not.
func (q *Inquiries) UpdateStatus(ctx context.Context, id int64, status string) error {
	items := q.Load(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if !validInquiryTransition(items[i].Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, items[i].Status, status)
		}
		now := time.Now()
		items[i].Status = status
		items[i].UpdatedAt = now
		err := q.backend.Update(ctx, q.kind, id, bson.M{"status": status, "updated_at": now})
		return afterWrite(ctx, &q.base, err, items)
	}
	return store.ErrNotFound
}

// Assign sets the handling admin and optional notes.
func (q *Inquiries) Assign(ctx context.Context, id int64, assignedTo, notes string) error {
	items := q.Load(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		now := time.Now()
		items[i].AssignedTo = assignedTo
		items[i].Notes = notes
		items[i].UpdatedAt = now
		err := q.backend.Update(ctx, q.kind, id, bson.M{"assigned_to": assignedTo, "notes": notes, "updated_at": now})
		return afterWrite(ctx, &q.base, err, items)
	}
	return store.ErrNotFound
}

func (q *Inquiries) Delete(ctx context.Context, id int64) error {
	items := q.Load(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return store.ErrNotFound
	}
	err := q.backend.Delete(ctx, q.kind, id)
	return afterWrite(ctx, &q.base, err, kept)
}

// Search matches q against name, company, country and product.
func (q *Inquiries) Search(items []models.Inquiry, query string) []models.Inquiry {
	if query == "" {
		return items
	}
	matched := make([]models.Inquiry, 0, len(items))
	for _, it := range items {
		if containsFold(it.FullName, query) || containsFold(it.Company, query) ||
			containsFold(it.Country, query) || containsFold(it.Product, query) {
			matched = append(matched, it)
		}
	}
	return matched
}

// Tally counts inquiries per status.
func (q *Inquiries) Tally(items []models.Inquiry) map[string]int {
	counts := map[string]int{
		models.InquiryPending:   0,
		models.InquiryReviewed:  0,
		models.InquiryCompleted: 0,
	}
	for _, it := range items {
		counts[it.Status]++
	}
	return counts
}
