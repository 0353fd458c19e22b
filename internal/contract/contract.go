// Package contract declares the HTTP API surface: one Route per logical
// operation, plus the typed request bodies validated at the boundary. The
// server registers handlers against these routes and the client builds its
// requests from the same table, so the two sides cannot drift apart.
package contract

import (
	"strconv"
	"strings"
)

type Route struct {
	Method string
	Path   string
}

var (
	Login       = Route{Method: "POST", Path: "/api/login"}
	Logout      = Route{Method: "POST", Path: "/api/logout"}
	CurrentUser = Route{Method: "GET", Path: "/api/user"}

	ProductList   = Route{Method: "GET", Path: "/api/products"}
	ProductGet    = Route{Method: "GET", Path: "/api/products/:id"}
	ProductCreate = Route{Method: "POST", Path: "/api/products"}
	ProductUpdate = Route{Method: "PUT", Path: "/api/products/:id"}
	ProductDelete = Route{Method: "DELETE", Path: "/api/products/:id"}

	OrderCreate = Route{Method: "POST", Path: "/api/orders"}
	OrderList   = Route{Method: "GET", Path: "/api/orders"}
	OrderGet    = Route{Method: "GET", Path: "/api/orders/:id"}
)

// BuildURL substitutes :params in a route path. Unknown params are ignored.
func BuildURL(path string, params map[string]int) string {
	url := path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, strconv.Itoa(value))
	}
	return url
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateProductRequest is the body of POST /api/products.
// Available defaults to true when omitted.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"gte=0"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Available   *bool  `json:"available"`
}

// UpdateProductRequest is the body of PUT /api/products/:id. Every field is
// optional; only the fields present are applied.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *int    `json:"price" validate:"omitempty,gte=0"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Available   *bool   `json:"available"`
}

// CreateOrderRequest is the body of POST /api/orders. Prices are deliberately
// absent: the server derives them from the catalog.
type CreateOrderRequest struct {
	CustomerName    string           `json:"customerName" validate:"required"`
	CustomerAddress string           `json:"customerAddress" validate:"required"`
	CustomerPhone   string           `json:"customerPhone" validate:"required"`
	CustomerEmail   string           `json:"customerEmail" validate:"omitempty,email"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderItemInput is one requested line: a product reference and a quantity.
type OrderItemInput struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gte=1"`
}

// ProductListFilter carries the supported query parameters of
// GET /api/products. Empty fields mean "no constraint".
type ProductListFilter struct {
	Search   string
	Category string
}
