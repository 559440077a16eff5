package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"zerodefect-backend/models"
)

// Admins manages back-office accounts. Password hashes are kept out of JSON
// serialization, so cached profiles carry no hash; the in-memory map below
// covers authentication when the remote store is unavailable.
type Admins struct {
	base

	mu     sync.RWMutex
	hashes map[string]string
}

// EnsureDefault makes sure an admin account for email exists, creating it
// with the given password when missing.
func (a *Admins) EnsureDefault(ctx context.Context, email, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.remember(email, string(hash))

	var existing []models.AdminProfile
	if err := a.backend.FetchWhere(ctx, a.kind, "user_email", email, &existing); err != nil {
		log.Printf("warn: admin lookup failed, default account kept in memory only: %v", err)
		return nil
	}
	if len(existing) > 0 {
		return nil
	}
	profile := models.AdminProfile{
		ID:           time.Now().UnixMilli(),
		UserEmail:    email,
		Name:         name,
		Role:         "Administrator",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := a.backend.Insert(ctx, a.kind, profile); err != nil {
		log.Printf("warn: creating default admin failed: %v", err)
	}
	return nil
}

// Authenticate verifies the credentials and returns the matching profile.
// Fails with ErrBadCredentials on unknown email or wrong password.
func (a *Admins) Authenticate(ctx context.Context, email, password string) (models.AdminProfile, error) {
	profile, _ := a.find(ctx, email)
	hash := profile.PasswordHash
	if hash == "" {
		hash = a.recall(email)
	}
	if hash == "" {
		return models.AdminProfile{}, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return models.AdminProfile{}, ErrBadCredentials
	}
	if profile.UserEmail == "" {
		profile = models.AdminProfile{UserEmail: email, Name: "Admin", Role: "Administrator"}
	}
	return profile, nil
}

// Profile returns the account for email, or a bare profile when none is
// stored.
func (a *Admins) Profile(ctx context.Context, email string) models.AdminProfile {
	profile, found := a.find(ctx, email)
	if !found {
		return models.AdminProfile{UserEmail: email, Name: "Admin", Role: "Administrator"}
	}
	return profile
}

// SaveAvatar upserts the avatar for email.
func (a *Admins) SaveAvatar(ctx context.Context, email, avatarURL string) error {
	profile, found := a.find(ctx, email)
	if !found {
		profile = models.AdminProfile{
			ID:        time.Now().UnixMilli(),
			UserEmail: email,
			Name:      "Admin",
			Role:      "Administrator",
			AvatarURL: avatarURL,
			CreatedAt: time.Now(),
		}
		return afterWrite(ctx, &a.base, a.backend.Insert(ctx, a.kind, profile), a.withProfile(ctx, profile))
	}
	profile.AvatarURL = avatarURL
	err := a.backend.Update(ctx, a.kind, profile.ID, bson.M{"avatar_url": avatarURL})
	return afterWrite(ctx, &a.base, err, a.withProfile(ctx, profile))
}

// ChangePassword verifies the current password and stores a hash of the new
// one.
func (a *Admins) ChangePassword(ctx context.Context, email, current, next string) error {
	if _, err := a.Authenticate(ctx, email, current); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.remember(email, string(hash))
	profile, found := a.find(ctx, email)
	if !found {
		return nil
	}
	uerr := a.backend.Update(ctx, a.kind, profile.ID, bson.M{"password_hash": string(hash)})
	profile.PasswordHash = string(hash)
	return afterWrite(ctx, &a.base, uerr, a.withProfile(ctx, profile))
}

func (a *Admins) find(ctx context.Context, email string) (models.AdminProfile, bool) {
	for _, p := range loadList[models.AdminProfile](ctx, &a.base) {
		if strings.EqualFold(p.UserEmail, email) {
			return p, true
		}
	}
	return models.AdminProfile{}, false
}

// withProfile is the full collection with profile applied, for the cache
// mirror after a write.
func (a *Admins) withProfile(ctx context.Context, profile models.AdminProfile) []models.AdminProfile {
	items := loadList[models.AdminProfile](ctx, &a.base)
	for i := range items {
		if items[i].ID == profile.ID {
			items[i] = profile
			return items
		}
	}
	return append(items, profile)
}

func (a *Admins) remember(email, hash string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hashes == nil {
		a.hashes = map[string]string{}
	}
	a.hashes[strings.ToLower(email)] = hash
}

func (a *Admins) recall(email string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hashes[strings.ToLower(email)]
}
