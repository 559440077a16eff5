package models

import "time"

// AdminProfile is an admin account with its avatar and password hash.
// The hash never leaves the server: it is json:"-" so every API response
// and cache write drops it.
type AdminProfile struct {
	ID           int64     `bson:"_id" json:"id"`
	UserEmail    string    `bson:"user_email" json:"userEmail"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
