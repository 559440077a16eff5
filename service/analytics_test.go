package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerodefect-backend/models"
)

func TestInquiriesByCountry(t *testing.T) {
	items := []models.Inquiry{
		{Country: "India", Product: "Basmati Rice"},
		{Country: "UAE", Product: "Basmati Rice"},
		{Country: "India", Product: "Cloves"},
	}
	got := InquiriesByCountry(items)
	require.Len(t, got, 2)
	assert.Equal(t, CountEntry{Label: "India", Count: 2}, got[0])
	assert.Equal(t, CountEntry{Label: "UAE", Count: 1}, got[1])
}

func TestOrdersPerDay(t *testing.T) {
	day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	items := []models.Order{
		{CreatedAt: day2},
		{CreatedAt: day1},
		{CreatedAt: day1.Add(3 * time.Hour)},
	}
	got := OrdersPerDay(items)
	require.Len(t, got, 2)
	assert.Equal(t, CountEntry{Label: "2026-08-01", Count: 2}, got[0])
	assert.Equal(t, CountEntry{Label: "2026-08-02", Count: 1}, got[1])
}

func TestProductPopularity(t *testing.T) {
	items := []models.Inquiry{
		{Product: "Basmati Rice"},
		{Product: "Basmati Rice"},
		{Product: "Cloves"},
	}
	got := ProductPopularity(items)
	require.Len(t, got, 2)
	assert.Equal(t, "Basmati Rice", got[0].Label)
	assert.Equal(t, 2, got[0].Count)
}
