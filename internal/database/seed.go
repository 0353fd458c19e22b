package database

import (
	log "github.com/sirupsen/logrus"

	"github.com/akbusiness/food-store-backend/internal/contract"
	"github.com/akbusiness/food-store-backend/internal/product"
	"github.com/akbusiness/food-store-backend/internal/user"
)

// Seed ensures an admin account exists and, when the catalog is empty,
// inserts a small starter catalog so a fresh deployment is browsable.
func Seed(users *user.Service, products *product.Service, adminUsername, adminPassword string) error {
	if _, err := users.GetByUsername(adminUsername); err == user.ErrNotFound {
		if _, err := users.Register(adminUsername, adminPassword); err != nil {
			return err
		}
		log.WithField("username", adminUsername).Info("seeded admin user")
	} else if err != nil {
		return err
	}

	existing, err := products.List(contract.ProductListFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seed := []contract.CreateProductRequest{
		{
			Name:        "Ketchup",
			Description: "Fresh tomato ketchup, perfect for fries.",
			Price:       250,
			Category:    "Sauces",
			ImageURL:    "https://images.unsplash.com/photo-1606132863925-544439169493?auto=format&fit=crop&q=80&w=800",
		},
		{
			Name:        "Mayonnaise",
			Description: "Creamy rich mayonnaise.",
			Price:       300,
			Category:    "Sauces",
			ImageURL:    "https://images.unsplash.com/photo-1595356262451-9e7f84266e74?auto=format&fit=crop&q=80&w=800",
		},
		{
			Name:        "Chicken Kabab",
			Description: "Spicy and delicious chicken kababs.",
			Price:       150,
			Category:    "Frozen",
			ImageURL:    "https://images.unsplash.com/photo-1603360946369-dc9bb6f54262?auto=format&fit=crop&q=80&w=800",
		},
	}
	for _, req := range seed {
		if _, err := products.Create(req); err != nil {
			return err
		}
	}
	log.WithField("count", len(seed)).Info("seeded products")
	return nil
}
