package models

import "time"

// Inquiry statuses.
const (
	InquiryPending   = "pending"
	InquiryReviewed  = "reviewed"
	InquiryCompleted = "completed"
)

type Inquiry struct {
	ID            int64     `bson:"_id" json:"id"`
	InquiryNumber string    `bson:"inquiry_number" json:"inquiryNumber"`
	FullName      string    `bson:"full_name" json:"fullName"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company       string    `bson:"company,omitempty" json:"company,omitempty"`
	Country       string    `bson:"country" json:"country"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	Product       string    `bson:"product" json:"product"`
	Quantity      string    `bson:"quantity" json:"quantity"`
	Message       string    `bson:"message,omitempty" json:"message,omitempty"`
	Status        string    `bson:"status" json:"status"`
	Priority      string    `bson:"priority" json:"priority"`
	AssignedTo    string    `bson:"assigned_to,omitempty" json:"assignedTo,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
