package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerodefect-backend/models"
)

func TestSettingsDefaults(t *testing.T) {
	svc, _, _ := newRemoteEnv()

	got := svc.Settings.Load(context.Background())
	assert.Equal(t, models.SettingsID, got.ID)
	assert.Equal(t, "Zero Defect Export & Manufacturing", got.StoreName)
}

func TestSettingsUpsert(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	in := DefaultSettings()
	in.StoreName = "Zero Defect Exports Ltd"
	in.StoreEmail = "sales@zerodefect.com"

	// First save inserts, second save updates.
	require.NoError(t, svc.Settings.Save(ctx, in))
	got := svc.Settings.Load(ctx)
	assert.Equal(t, "Zero Defect Exports Ltd", got.StoreName)

	in.StorePhone = "+91 98765 43210"
	require.NoError(t, svc.Settings.Save(ctx, in))
	got = svc.Settings.Load(ctx)
	assert.Equal(t, "+91 98765 43210", got.StorePhone)
	assert.Equal(t, "sales@zerodefect.com", got.StoreEmail)
}

func TestSettingsLenientFailure(t *testing.T) {
	svc, fake, _ := newRemoteEnv()
	ctx := context.Background()

	fake.failWrites = true
	in := DefaultSettings()
	in.StoreName = "Offline Rename"
	require.NoError(t, svc.Settings.Save(ctx, in))

	// Remote reads fail too; the cached copy serves the rename.
	fake.failReads = true
	got := svc.Settings.Load(ctx)
	assert.Equal(t, "Offline Rename", got.StoreName)
}
