package product

// Product is a catalog entry. Price is in minor currency units (cents);
// clients divide by 100 for display only.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
}
