package catalog

import (
	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Seed returns the stock HUB catalog loaded at session start.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Aura Headphones",
			Description: "Noise-cancelling wireless headphones with 40-hour battery life and spatial audio.",
			Price:       decimal.RequireFromString("299.99"),
			Category:    models.CategoryElectronics,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=800",
			Stock:       15,
			Rating:      4.8,
		},
		{
			ID:          "2",
			Name:        "Minimalist Timepiece",
			Description: "Sleek, stainless steel watch with Italian leather strap and sapphire crystal.",
			Price:       decimal.RequireFromString("189.50"),
			Category:    models.CategoryFashion,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=800",
			Stock:       22,
			Rating:      4.6,
		},
		{
			ID:          "3",
			Name:        "Ceramic Pour-Over Kit",
			Description: "Professional grade coffee brewing set for the ultimate morning ritual.",
			Price:       decimal.RequireFromString("45.00"),
			Category:    models.CategoryHome,
			Image:       "https://images.unsplash.com/photo-1544200175-ca6e80a7b325?auto=format&fit=crop&q=80&w=800",
			Stock:       30,
			Rating:      4.9,
		},
		{
			ID:          "4",
			Name:        "Glow Skin Serum",
			Description: "Hydrating face serum with Vitamin C and hyaluronic acid for radiant skin.",
			Price:       decimal.RequireFromString("65.00"),
			Category:    models.CategoryBeauty,
			Image:       "https://images.unsplash.com/photo-1556229010-6c3f2c9ca5f8?auto=format&fit=crop&q=80&w=800",
			Stock:       50,
			Rating:      4.5,
		},
		{
			ID:          "5",
			Name:        "Ergonomic Desk Chair",
			Description: "Adjustable lumbar support and breathable mesh for all-day comfort.",
			Price:       decimal.RequireFromString("349.00"),
			Category:    models.CategoryHome,
			Image:       "https://images.unsplash.com/photo-1592078615290-033ee584e267?auto=format&fit=crop&q=80&w=800",
			Stock:       8,
			Rating:      4.7,
		},
		{
			ID:          "6",
			Name:        "Suede Chelsea Boots",
			Description: "Classic handcrafted boots made from premium Italian suede.",
			Price:       decimal.RequireFromString("210.00"),
			Category:    models.CategoryFashion,
			Image:       "https://images.unsplash.com/photo-1638247025967-b4e38f787b76?auto=format&fit=crop&q=80&w=800",
			Stock:       12,
			Rating:      4.4,
			Sizes:       []string{"40", "41", "42", "43", "44"},
		},
	}
}
