package domain

import "math"

// Product is a catalog record stored in the products collection.
// Availability and discount are derived on read, never persisted.
type Product struct {
	ID          string   `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	Brand       string   `bson:"brand,omitempty" json:"brand,omitempty"`
	Price       float64  `bson:"price" json:"price"`
	OldPrice    *float64 `bson:"oldPrice,omitempty" json:"oldPrice,omitempty"`
	Stock       *int     `bson:"stock,omitempty" json:"stock,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags,omitempty"`
	ImageURL    string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

func (p Product) Available() bool {
	return p.Stock != nil && *p.Stock > 0
}

func (p Product) HasDiscount() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// DiscountPercentage is 100×(oldPrice−price)/oldPrice rounded half up.
// Returns 0 when the product has no discount.
func (p Product) DiscountPercentage() int {
	if !p.HasDiscount() {
		return 0
	}

	discount := (*p.OldPrice - p.Price) / *p.OldPrice
	return int(math.Round(discount * 100))
}
