package product

import (
	"github.com/akbusiness/food-store-backend/internal/contract"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(filter contract.ProductListFilter) ([]Product, error) {
	return s.repo.List(filter)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Create(req contract.CreateProductRequest) (Product, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return s.repo.Create(Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Available:   available,
	})
}

// Update applies only the fields present in the request to the stored row.
func (s *Service) Update(id int, req contract.UpdateProductRequest) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.ImageURL != nil {
		existing.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Available != nil {
		existing.Available = *req.Available
	}

	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
