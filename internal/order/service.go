package order

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/akbusiness/food-store-backend/internal/contract"
	"github.com/akbusiness/food-store-backend/internal/product"
)

// Catalog is the slice of the product service the placement flow needs.
type Catalog interface {
	ListByIDs(ids []int) ([]product.Product, error)
}

// Notifier delivers a best-effort confirmation for a created order.
type Notifier interface {
	OrderCreated(ord OrderWithItems) error
}

// UnknownProductError is returned when a requested line references a product
// id that does not exist. The whole request is rejected; no rows are written.
type UnknownProductError struct {
	ProductID int
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// Service places orders: it re-prices the request from the catalog, snapshots
// per-line prices, and commits everything through the repository.
type Service struct {
	repo     Repository
	catalog  Catalog
	notifier Notifier
}

func NewService(repo Repository, catalog Catalog, notifier Notifier) *Service {
	return &Service{repo: repo, catalog: catalog, notifier: notifier}
}

// Place creates an order from a validated request. Client-supplied prices, if
// any were sent, are never consulted: each line is priced from the catalog at
// the moment of placement and that price is stored on the item.
func (s *Service) Place(req contract.CreateOrderRequest) (OrderWithItems, error) {
	// fetch each referenced product once, even when it appears on several lines
	ids := make([]int, 0, len(req.Items))
	seen := make(map[int]bool, len(req.Items))
	for _, line := range req.Items {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	products, err := s.catalog.ListByIDs(ids)
	if err != nil {
		return OrderWithItems{}, err
	}
	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	totalAmount := 0
	items := make([]Item, 0, len(req.Items))
	for _, line := range req.Items {
		p, ok := byID[line.ProductID]
		if !ok {
			return OrderWithItems{}, &UnknownProductError{ProductID: line.ProductID}
		}
		totalAmount += p.Price * line.Quantity
		items = append(items, Item{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     p.Price,
		})
	}

	ord := Order{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerPhone:   req.CustomerPhone,
		TotalAmount:     totalAmount,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if req.CustomerEmail != "" {
		email := req.CustomerEmail
		ord.CustomerEmail = &email
	}

	created, err := s.repo.CreateWithItems(ord, items)
	if err != nil {
		return OrderWithItems{}, err
	}

	// fire-and-forget: notification failure never affects the stored order
	if s.notifier != nil {
		go func(ord OrderWithItems) {
			if err := s.notifier.OrderCreated(ord); err != nil {
				log.WithError(err).WithField("order_id", ord.ID).Error("order notification failed")
			}
		}(created)
	}

	return created, nil
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) GetWithItems(id int) (OrderDetail, error) {
	return s.repo.GetWithItems(id)
}
