package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerodefect-backend/models"
)

func TestOrdersCSV(t *testing.T) {
	data, err := OrdersCSV([]models.Order{{
		OrderNumber:   "ORD-1717171717171",
		CustomerName:  "Asha Patel",
		CustomerEmail: "asha@example.com",
		ProductName:   "Basmati Rice, Cloves",
		Quantity:      3,
		TotalAmount:   1200,
		PaymentMethod: "bank-transfer",
		Status:        models.OrderPending,
		CreatedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Order Number")
	assert.Contains(t, lines[1], "ORD-1717171717171")
	assert.Contains(t, lines[1], `"Basmati Rice, Cloves"`, "comma-bearing fields are quoted")
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
