package order

import (
	"database/sql"

	"github.com/akbusiness/food-store-backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (customer_name, customer_address, customer_phone, customer_email, total_amount, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`
	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`
	listOrdersQuery = `
		SELECT id, customer_name, customer_address, customer_phone, customer_email, total_amount, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	getOrderQuery = `
		SELECT id, customer_name, customer_address, customer_phone, customer_email, total_amount, status, created_at
		FROM orders
		WHERE id = $1
	`
	getOrderItemsQuery = `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.price,
		       p.id, p.name, p.description, p.price, p.image_url, p.category, p.available
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateWithItems writes the order row and all item rows inside a single
// transaction so concurrent readers never see a half-written order.
func (r *PostgresRepository) CreateWithItems(ord Order, items []Item) (OrderWithItems, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return OrderWithItems{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	err = tx.QueryRow(
		insertOrderQuery,
		ord.CustomerName,
		ord.CustomerAddress,
		ord.CustomerPhone,
		ord.CustomerEmail,
		ord.TotalAmount,
		ord.Status,
		ord.CreatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return OrderWithItems{}, err
	}

	stored := make([]Item, 0, len(items))
	for _, item := range items {
		item.OrderID = ord.ID
		if err := tx.QueryRow(
			insertOrderItemQuery,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.Price,
		).Scan(&item.ID); err != nil {
			return OrderWithItems{}, err
		}
		stored = append(stored, item)
	}

	if err := tx.Commit(); err != nil {
		return OrderWithItems{}, err
	}
	return OrderWithItems{Order: ord, Items: stored}, nil
}

func (r *PostgresRepository) List() ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetWithItems(id int) (OrderDetail, error) {
	row := r.db.QueryRow(getOrderQuery, id)
	ord, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return OrderDetail{}, ErrNotFound
		}
		return OrderDetail{}, err
	}

	rows, err := r.db.Query(getOrderItemsQuery, id)
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	items := make([]ItemDetail, 0)
	for rows.Next() {
		var item ItemDetail
		var (
			pID        sql.NullInt64
			pName      sql.NullString
			pDesc      sql.NullString
			pPrice     sql.NullInt64
			pImageURL  sql.NullString
			pCategory  sql.NullString
			pAvailable sql.NullBool
		)
		if err := rows.Scan(
			&item.Item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Item.Price,
			&pID, &pName, &pDesc, &pPrice, &pImageURL, &pCategory, &pAvailable,
		); err != nil {
			return OrderDetail{}, err
		}
		if pID.Valid {
			item.Product = &product.Product{
				ID:          int(pID.Int64),
				Name:        pName.String,
				Description: pDesc.String,
				Price:       int(pPrice.Int64),
				ImageURL:    pImageURL.String,
				Category:    pCategory.String,
				Available:   pAvailable.Bool,
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{Order: ord, Items: items}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(scanner rowScanner) (Order, error) {
	ord := Order{}
	var email sql.NullString
	if err := scanner.Scan(
		&ord.ID,
		&ord.CustomerName,
		&ord.CustomerAddress,
		&ord.CustomerPhone,
		&email,
		&ord.TotalAmount,
		&ord.Status,
		&ord.CreatedAt,
	); err != nil {
		return Order{}, err
	}
	if email.Valid {
		ord.CustomerEmail = &email.String
	}
	return ord, nil
}
