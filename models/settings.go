package models

import "time"

// SettingsID is the fixed identity of the settings singleton.
const SettingsID = "default"

type Settings struct {
	ID                    string    `bson:"_id" json:"id"`
	StoreName             string    `bson:"store_name" json:"storeName"`
	Tagline               string    `bson:"tagline,omitempty" json:"tagline,omitempty"`
	StoreEmail            string    `bson:"store_email" json:"storeEmail"`
	StorePhone            string    `bson:"store_phone" json:"storePhone"`
	StoreWhatsapp         string    `bson:"store_whatsapp,omitempty" json:"storeWhatsapp,omitempty"`
	StoreLocation         string    `bson:"store_location" json:"storeLocation"`
	BusinessHoursWeekdays string    `bson:"business_hours_weekdays,omitempty" json:"businessHoursWeekdays,omitempty"`
	BusinessHoursSaturday string    `bson:"business_hours_saturday,omitempty" json:"businessHoursSaturday,omitempty"`
	BusinessHoursSunday   string    `bson:"business_hours_sunday,omitempty" json:"businessHoursSunday,omitempty"`
	SocialLinkedin        string    `bson:"social_linkedin,omitempty" json:"socialLinkedin,omitempty"`
	SocialTwitter         string    `bson:"social_twitter,omitempty" json:"socialTwitter,omitempty"`
	SocialInstagram       string    `bson:"social_instagram,omitempty" json:"socialInstagram,omitempty"`
	SocialFacebook        string    `bson:"social_facebook,omitempty" json:"socialFacebook,omitempty"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updatedAt"`
}
