package service

import (
	"context"
	"fmt"
	"strings"

	"zerodefect-backend/models"
)

// CheckoutRequest is the storefront checkout form.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Payment string `json:"payment"`
}

func (r CheckoutRequest) validate() error {
	fields := ValidationError{}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "email is required"
	} else if !emailPattern.MatchString(r.Email) {
		fields["email"] = "email is not valid"
	}
	if strings.TrimSpace(r.Address) == "" {
		fields["address"] = "shipping address is required"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Checkout turns the current cart into an order. The order itself is strict:
// it fails outright when the remote store rejects it, and nothing else runs.
// Stock decrements and the notification are best-effort afterwards, and the
// cart is cleared only on success.
func (s *Services) Checkout(ctx context.Context, req CheckoutRequest) (models.Order, error) {
	if err := req.validate(); err != nil {
		return models.Order{}, err
	}
	items := s.Cart.Items(ctx)
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	names := make([]string, len(items))
	totalQty := 0
	for i, it := range items {
		names[i] = it.Name
		totalQty += it.Quantity
	}
	payment := req.Payment
	if payment == "" {
		payment = "not-specified"
	}
	order, err := s.Orders.Create(ctx, models.Order{
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Phone,
		ShippingAddress: req.Address,
		ProductName:     strings.Join(names, ", "),
		Quantity:        totalQty,
		// UnitPrice reflects the first cart line only; for mixed carts
		// TotalAmount is the authoritative figure.
		UnitPrice:   items[0].Price,
		TotalAmount: models.CartTotal(items),
		PaymentMethod:   payment,
	})
	if err != nil {
		return models.Order{}, err
	}

	for _, it := range items {
		s.Products.DecrementStock(ctx, it.Name, it.Quantity)
	}
	s.Notifications.Add(ctx, models.NotifyOrder, "New Order Placed",
		fmt.Sprintf("Order #%s by %s", order.OrderNumber, req.Name))
	s.Cart.Clear(ctx)
	return order, nil
}
