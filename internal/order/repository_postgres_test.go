package order

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateWithItems_CommitsAllRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	createdAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Ahmad", "12 Main St", "0300-1234567", nil, 750, StatusPending, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(10, 1, 3, 250).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectCommit()

	ord := Order{
		CustomerName:    "Ahmad",
		CustomerAddress: "12 Main St",
		CustomerPhone:   "0300-1234567",
		TotalAmount:     750,
		Status:          StatusPending,
		CreatedAt:       createdAt,
	}
	created, err := repo.CreateWithItems(ord, []Item{{ProductID: 1, Quantity: 3, Price: 250}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 10 {
		t.Fatalf("expected order id 10, got %d", created.ID)
	}
	if len(created.Items) != 1 || created.Items[0].ID != 100 || created.Items[0].OrderID != 10 {
		t.Fatalf("unexpected items %+v", created.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateWithItems_RollsBackOnItemFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	createdAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("Ahmad", "12 Main St", "0300-1234567", nil, 550, StatusPending, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(11, 1, 1, 250).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(11, 2, 1, 300).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	ord := Order{
		CustomerName:    "Ahmad",
		CustomerAddress: "12 Main St",
		CustomerPhone:   "0300-1234567",
		TotalAmount:     550,
		Status:          StatusPending,
		CreatedAt:       createdAt,
	}
	_, err = repo.CreateWithItems(ord, []Item{
		{ProductID: 1, Quantity: 1, Price: 250},
		{ProductID: 2, Quantity: 1, Price: 300},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetWithItems_DeletedProductLeavesSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	createdAt := time.Now().UTC()
	orderRows := sqlmock.NewRows([]string{"id", "customer_name", "customer_address", "customer_phone", "customer_email", "total_amount", "status", "created_at"}).
		AddRow(5, "Ahmad", "12 Main St", "0300-1234567", nil, 250, StatusPending, createdAt)
	mock.ExpectQuery("FROM orders").WithArgs(5).WillReturnRows(orderRows)

	// the LEFT JOIN yields NULL product columns when the product is gone
	itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price", "id", "name", "description", "price", "image_url", "category", "available"}).
		AddRow(100, 5, 1, 1, 250, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM order_items").WithArgs(5).WillReturnRows(itemRows)

	detail, err := repo.GetWithItems(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(detail.Items))
	}
	item := detail.Items[0]
	if item.Product != nil {
		t.Fatalf("expected nil product, got %+v", item.Product)
	}
	if item.Price != 250 {
		t.Fatalf("snapshot price lost: %d", item.Price)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetWithItems_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM orders").WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name", "customer_address", "customer_phone", "customer_email", "total_amount", "status", "created_at"}))

	if _, err := repo.GetWithItems(404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
