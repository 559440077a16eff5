package models

import "time"

type Review struct {
	ID            int64     `bson:"_id" json:"id"`
	ReviewerName  string    `bson:"reviewer_name" json:"reviewerName"`
	ReviewerImage string    `bson:"reviewer_image,omitempty" json:"reviewerImage,omitempty"`
	Rating        float64   `bson:"rating" json:"rating"`
	ReviewText    string    `bson:"review_text" json:"reviewText"`
	AdminReply    string    `bson:"admin_reply,omitempty" json:"adminReply,omitempty"`
	ProductName   string    `bson:"product_name,omitempty" json:"productName,omitempty"`
	IsApproved    bool      `bson:"is_approved" json:"isApproved"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
