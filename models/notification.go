package models

import "time"

// Notification types mirror the events that create them.
const (
	NotifyOrder   = "order"
	NotifyInquiry = "inquiry"
	NotifyReview  = "review"
)

type Notification struct {
	ID        string    `bson:"_id" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Icon      string    `bson:"icon,omitempty" json:"icon,omitempty"`
	IsRead    bool      `bson:"is_read" json:"isRead"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// IconForType picks the badge icon shown next to a notification.
func IconForType(t string) string {
	switch t {
	case NotifyOrder:
		return "shopping-cart"
	case NotifyInquiry:
		return "envelope"
	case NotifyReview:
		return "star"
	}
	return "bell"
}
