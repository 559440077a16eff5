package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"zerodefect-backend/models"
	"zerodefect-backend/store"
)

// Settings manages the store profile singleton.
type Settings struct {
	base
}

// Load returns the saved settings, or the defaults when none were saved
// yet. Store failures fall back to the cached copy, then to the defaults.
func (s *Settings) Load(ctx context.Context) models.Settings {
	var rows []models.Settings
	if err := s.backend.FetchWhere(ctx, s.kind, "id", models.SettingsID, &rows); err != nil {
		log.Printf("warn: loading settings from store failed, using cache: %v", err)
		var cached []models.Settings
		if s.cache.Get(ctx, s.key, &cached) && len(cached) > 0 {
			return cached[0]
		}
		return DefaultSettings()
	}
	if len(rows) == 0 {
		return DefaultSettings()
	}
	if s.backend.Remote() {
		putCache(ctx, &s.base, rows)
	}
	return rows[0]
}

// Save upserts the singleton: update first, insert when it does not exist
// yet.
func (s *Settings) Save(ctx context.Context, in models.Settings) error {
	in.ID = models.SettingsID
	in.UpdatedAt = time.Now()
	err := s.backend.Update(ctx, s.kind, in.ID, settingsPatch(in))
	if errors.Is(err, store.ErrNotFound) {
		err = s.backend.Insert(ctx, s.kind, in)
	}
	// The cached collection always holds exactly the singleton.
	return afterWrite(ctx, &s.base, err, []models.Settings{in})
}

func settingsPatch(in models.Settings) bson.M {
	return bson.M{
		"store_name":              in.StoreName,
		"tagline":                 in.Tagline,
		"store_email":             in.StoreEmail,
		"store_phone":             in.StorePhone,
		"store_whatsapp":          in.StoreWhatsapp,
		"store_location":          in.StoreLocation,
		"business_hours_weekdays": in.BusinessHoursWeekdays,
		"business_hours_saturday": in.BusinessHoursSaturday,
		"business_hours_sunday":   in.BusinessHoursSunday,
		"social_linkedin":         in.SocialLinkedin,
		"social_twitter":          in.SocialTwitter,
		"social_instagram":        in.SocialInstagram,
		"social_facebook":         in.SocialFacebook,
		"updated_at":              in.UpdatedAt,
	}
}
