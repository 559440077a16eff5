package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"zerodefect-backend/models"
)

// OrdersCSV renders orders as a CSV document for the back-office export
// button.
func OrdersCSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{
		"Order Number", "Customer", "Email", "Phone", "Address",
		"Products", "Quantity", "Total", "Payment", "Status", "Created",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range orders {
		row := []string{
			o.OrderNumber,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.ShippingAddress,
			o.ProductName,
			strconv.Itoa(o.Quantity),
			strconv.Itoa(o.TotalAmount),
			o.PaymentMethod,
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
