package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuthenticate(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	require.NoError(t, svc.Admins.EnsureDefault(ctx, "admin@zerodefect.com", "admin123", "Admin"))

	profile, err := svc.Admins.Authenticate(ctx, "admin@zerodefect.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@zerodefect.com", profile.UserEmail)
	assert.Equal(t, "Administrator", profile.Role)

	_, err = svc.Admins.Authenticate(ctx, "admin@zerodefect.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Admins.Authenticate(ctx, "nobody@zerodefect.com", "admin123")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestAdminAuthenticateLocalOnly(t *testing.T) {
	svc, _ := newLocalEnv()
	ctx := context.Background()

	// Cached profiles never carry the password hash; the in-memory default
	// still authenticates.
	require.NoError(t, svc.Admins.EnsureDefault(ctx, "admin@zerodefect.com", "admin123", "Admin"))

	_, err := svc.Admins.Authenticate(ctx, "admin@zerodefect.com", "admin123")
	require.NoError(t, err)

	_, err = svc.Admins.Authenticate(ctx, "admin@zerodefect.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestAdminChangePassword(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	require.NoError(t, svc.Admins.EnsureDefault(ctx, "admin@zerodefect.com", "admin123", "Admin"))

	err := svc.Admins.ChangePassword(ctx, "admin@zerodefect.com", "wrong", "newpassword1")
	require.ErrorIs(t, err, ErrBadCredentials)

	require.NoError(t, svc.Admins.ChangePassword(ctx, "admin@zerodefect.com", "admin123", "newpassword1"))

	_, err = svc.Admins.Authenticate(ctx, "admin@zerodefect.com", "admin123")
	require.ErrorIs(t, err, ErrBadCredentials)
	_, err = svc.Admins.Authenticate(ctx, "admin@zerodefect.com", "newpassword1")
	require.NoError(t, err)
}

func TestAdminSaveAvatar(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	require.NoError(t, svc.Admins.EnsureDefault(ctx, "admin@zerodefect.com", "admin123", "Admin"))
	require.NoError(t, svc.Admins.SaveAvatar(ctx, "admin@zerodefect.com", "https://example.com/a.png"))

	profile := svc.Admins.Profile(ctx, "admin@zerodefect.com")
	assert.Equal(t, "https://example.com/a.png", profile.AvatarURL)
}
