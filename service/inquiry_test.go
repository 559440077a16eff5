package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerodefect-backend/cache"
	"zerodefect-backend/models"
)

func validInquiry() models.Inquiry {
	return models.Inquiry{
		FullName: "Asha Patel",
		Email:    "asha@example.com",
		Country:  "India",
		Product:  "Basmati Rice",
		Quantity: "5 tons",
	}
}

func TestInquiryValidation(t *testing.T) {
	svc, _, _ := newRemoteEnv()

	_, err := svc.Inquiries.Create(context.Background(), models.Inquiry{Email: "not-an-email"})
	var fields ValidationError
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "country")
	assert.Contains(t, fields, "product")
	assert.Contains(t, fields, "quantity")
}

func TestInquiryCreate(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	created, err := svc.Inquiries.Create(ctx, validInquiry())
	require.NoError(t, err)
	assert.Equal(t, models.InquiryPending, created.Status)
	assert.Equal(t, "medium", created.Priority)
	assert.Equal(t, "INQ-", created.InquiryNumber[:4])

	// The event raised a notification.
	notes := svc.Notifications.Load(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotifyInquiry, notes[0].Type)
}

func TestInquiryLifecycleSkipsStages(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	created, err := svc.Inquiries.Create(ctx, validInquiry())
	require.NoError(t, err)

	// pending -> completed directly is legal.
	require.NoError(t, svc.Inquiries.UpdateStatus(ctx, created.ID, models.InquiryCompleted))

	// completed -> pending is not.
	err = svc.Inquiries.UpdateStatus(ctx, created.ID, models.InquiryPending)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestInquiryLenientWriteFailure(t *testing.T) {
	svc, fake, local := newRemoteEnv()
	ctx := context.Background()

	fake.failWrites = true
	created, err := svc.Inquiries.Create(ctx, validInquiry())
	require.NoError(t, err, "lenient policy keeps the operation successful")

	// The mutated collection landed in the local cache.
	var cached []models.Inquiry
	require.True(t, local.Get(ctx, cache.KeyInquiries, &cached))
	require.Len(t, cached, 1)
	assert.Equal(t, created.ID, cached[0].ID)
}

func TestInquiryLoadFallsBackToCache(t *testing.T) {
	svc, fake, _ := newRemoteEnv()
	ctx := context.Background()

	created, err := svc.Inquiries.Create(ctx, validInquiry())
	require.NoError(t, err)

	// Remote reads start failing; the cached mirror serves reads wholesale.
	fake.failReads = true
	items := svc.Inquiries.Load(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, created.FullName, items[0].FullName)
}

func TestInquirySearch(t *testing.T) {
	svc, _, _ := newRemoteEnv()
	ctx := context.Background()

	_, err := svc.Inquiries.Create(ctx, validInquiry())
	require.NoError(t, err)

	items := svc.Inquiries.Load(ctx)
	assert.Len(t, svc.Inquiries.Search(items, "india"), 1)
	assert.Len(t, svc.Inquiries.Search(items, "basmati"), 1)
	assert.Len(t, svc.Inquiries.Search(items, "nobody"), 0)
}
