package order

import (
	"time"

	"github.com/akbusiness/food-store-backend/internal/product"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Order is a customer purchase. TotalAmount is in minor currency units and
// is always computed server-side from catalog prices.
type Order struct {
	ID              int       `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerAddress string    `json:"customerAddress"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   *string   `json:"customerEmail"`
	TotalAmount     int       `json:"totalAmount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Item is one order line. Price is the per-unit snapshot taken at order time;
// it never changes even if the product's live price does.
type Item struct {
	ID        int `json:"id"`
	OrderID   int `json:"orderId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
	Price     int `json:"price"`
}

// OrderWithItems is the shape returned from order creation.
type OrderWithItems struct {
	Order
	Items []Item `json:"items"`
}

// ItemDetail is an order line joined with its product for display. Product is
// nil when the referenced product has since been deleted; the snapshot price
// on the item still stands.
type ItemDetail struct {
	Item
	Product *product.Product `json:"product"`
}

// OrderDetail is the shape returned from the order detail endpoint.
type OrderDetail struct {
	Order
	Items []ItemDetail `json:"items"`
}
