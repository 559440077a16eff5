package models

import "time"

// Order statuses. Forward progression only; cancelled is terminal.
const (
	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID              int64     `bson:"_id" json:"id"`
	OrderNumber     string    `bson:"order_number" json:"orderNumber"`
	CustomerName    string    `bson:"customer_name" json:"customerName"`
	CustomerEmail   string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone   string    `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	ShippingAddress string    `bson:"shipping_address" json:"shippingAddress"`
	ProductName     string    `bson:"product_name" json:"productName"`
	Quantity        int       `bson:"quantity" json:"quantity"`
	UnitPrice       int       `bson:"unit_price" json:"unitPrice"`
	TotalAmount     int       `bson:"total_amount" json:"totalAmount"`
	PaymentMethod   string    `bson:"payment_method" json:"paymentMethod"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
