package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/akbusiness/food-store-backend/internal/product"
)

func setupApp(products []product.Product) *fiber.App {
	catalog := product.NewService(product.NewInMemoryRepository(products))
	h := NewHandler(NewService(NewInMemoryRepository(), catalog, nil))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func postOrder(t *testing.T, app *fiber.App, body map[string]any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestCreateOrder_KetchupScenario(t *testing.T) {
	app := setupApp([]product.Product{
		{ID: 1, Name: "Ketchup", Price: 250, Category: "Sauces", Available: true},
	})

	res := postOrder(t, app, map[string]any{
		"customerName":    "Ahmad",
		"customerAddress": "12 Main St",
		"customerPhone":   "0300-1234567",
		"items":           []map[string]any{{"productId": 1, "quantity": 3}},
	})
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created OrderWithItems
	json.NewDecoder(res.Body).Decode(&created)
	if created.TotalAmount != 750 {
		t.Fatalf("expected totalAmount 750, got %d", created.TotalAmount)
	}
	if len(created.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(created.Items))
	}
	if created.Items[0].Price != 250 || created.Items[0].Quantity != 3 {
		t.Fatalf("unexpected item %+v", created.Items[0])
	}
	if created.Status != StatusPending {
		t.Fatalf("expected status pending, got %q", created.Status)
	}
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	app := setupApp(nil)

	res := postOrder(t, app, map[string]any{
		"customerName":    "Ahmad",
		"customerAddress": "12 Main St",
		"customerPhone":   "0300-1234567",
		"items":           []map[string]any{{"productId": 42, "quantity": 1}},
	})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
	}
	json.NewDecoder(res.Body).Decode(&body)
	if body.Message != "product 42 not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	app := setupApp(nil)

	res := postOrder(t, app, map[string]any{
		"customerName":    "Ahmad",
		"customerAddress": "12 Main St",
		"customerPhone":   "0300-1234567",
		"items":           []map[string]any{},
	})
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	app := setupApp(nil)

	req := httptest.NewRequest("GET", "/api/orders/12345", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
