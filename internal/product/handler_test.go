package product

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(seed []Product) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	h := NewHandler(NewService(repo))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, repo
}

func TestGetProduct_NotFound(t *testing.T) {
	app, _ := setupApp(nil)

	req := httptest.NewRequest("GET", "/api/products/99", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	app, _ := setupApp(nil)

	body, _ := json.Marshal(map[string]any{
		"name":        "Ketchup",
		"description": "Fresh tomato ketchup",
		"price":       250,
		"imageUrl":    "/img/ketchup.jpg",
		"category":    "Sauces",
	})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Product
	json.NewDecoder(res.Body).Decode(&created)
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !created.Available {
		t.Fatal("expected available to default to true")
	}

	getReq := httptest.NewRequest("GET", "/api/products/1", nil)
	getRes, err := app.Test(getReq, -1)
	if err != nil {
		t.Fatal(err)
	}
	var fetched Product
	json.NewDecoder(getRes.Body).Decode(&fetched)
	if fetched != created {
		t.Fatalf("round trip mismatch: created %+v fetched %+v", created, fetched)
	}
}

func TestCreateProduct_ValidationError(t *testing.T) {
	app, _ := setupApp(nil)

	// missing name
	body, _ := json.Marshal(map[string]any{
		"description": "no name",
		"price":       100,
		"imageUrl":    "/img/x.jpg",
		"category":    "Spices",
	})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var ve struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	json.NewDecoder(res.Body).Decode(&ve)
	if ve.Message == "" || ve.Field != "name" {
		t.Fatalf("unexpected validation body %+v", ve)
	}
}

func TestUpdateProduct_Partial(t *testing.T) {
	app, _ := setupApp([]Product{{
		ID: 1, Name: "Ketchup", Description: "Fresh", Price: 250,
		ImageURL: "/img/ketchup.jpg", Category: "Sauces", Available: true,
	}})

	body, _ := json.Marshal(map[string]any{"price": 300})
	req := httptest.NewRequest("PUT", "/api/products/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var updated Product
	json.NewDecoder(res.Body).Decode(&updated)
	if updated.Price != 300 {
		t.Fatalf("expected price 300, got %d", updated.Price)
	}
	// untouched fields survive
	if updated.Name != "Ketchup" || updated.Category != "Sauces" || !updated.Available {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}
}

func TestDeleteProduct(t *testing.T) {
	app, _ := setupApp([]Product{{ID: 1, Name: "Ketchup", Price: 250, Category: "Sauces"}})

	req := httptest.NewRequest("DELETE", "/api/products/1", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}

	// deleting again reports not found
	again := httptest.NewRequest("DELETE", "/api/products/1", nil)
	res, err = app.Test(again, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestListProducts_Filters(t *testing.T) {
	app, _ := setupApp([]Product{
		{ID: 1, Name: "Ketchup", Category: "Sauces", Available: true},
		{ID: 2, Name: "Chicken Kabab", Category: "Frozen", Available: true},
		{ID: 3, Name: "Green Ketchup", Category: "Frozen", Available: true},
	})

	req := httptest.NewRequest("GET", "/api/products?search=ketchup&category=Frozen", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	var out []Product
	json.NewDecoder(res.Body).Decode(&out)
	if len(out) != 1 || out[0].ID != 3 {
		t.Fatalf("expected only product 3, got %+v", out)
	}
}
