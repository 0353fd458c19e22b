package order

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders.
type Repository interface {
	// CreateWithItems persists the order row and all item rows as one atomic
	// unit: either everything is durably written or nothing is.
	CreateWithItems(ord Order, items []Item) (OrderWithItems, error)
	// List returns all orders, newest first.
	List() ([]Order, error)
	// GetWithItems returns an order and its items, each joined with its
	// product when the product still exists.
	GetWithItems(id int) (OrderDetail, error)
}

// InMemoryRepository keeps orders in memory, for tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []OrderWithItems
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) CreateWithItems(ord Order, items []Item) (OrderWithItems, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++

	stored := make([]Item, len(items))
	for i, item := range items {
		item.ID = ord.ID*100 + i + 1
		item.OrderID = ord.ID
		stored[i] = item
	}

	created := OrderWithItems{Order: ord, Items: stored}
	r.orders = append(r.orders, created)
	return created, nil
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) GetWithItems(id int) (OrderDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			detail := OrderDetail{Order: o.Order, Items: make([]ItemDetail, len(o.Items))}
			for i, item := range o.Items {
				detail.Items[i] = ItemDetail{Item: item}
			}
			return detail, nil
		}
	}
	return OrderDetail{}, ErrNotFound
}
