package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a product. The catalog is closed over this set;
// unknown categories are rejected at the boundary.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryAccessories Category = "Accessories"
	CategoryFootwear    Category = "Footwear"
	CategoryOuterwear   Category = "Outerwear"
	CategoryHome        Category = "Home"
	CategoryBeauty      Category = "Beauty"
)

// Product is immutable after catalog load within a session.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Sizes       []string        `json:"sizes,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
}

// CartLine is one cart entry. Price is locked to the product's price at
// insertion time; later catalog changes must not reach existing lines.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Category  Category        `json:"category"`
	Image     string          `json:"image"`
}

// LineKey builds the composite identity key for a cart line: the bare
// product id, or productID:size when a size was selected. Two lines with
// the same product but different sizes stay distinct; same product and
// same size collapse into one line.
func LineKey(productID, size string) string {
	if size == "" {
		return productID
	}
	return productID + ":" + size
}

func (l CartLine) Key() string {
	return LineKey(l.ProductID, l.Size)
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// GuestUserID is the fixed sentinel owner for orders placed without a
// logged-in user.
const GuestUserID = "guest"

// Order is an immutable snapshot of a cart at checkout time. Only Status
// may change after creation.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"date"`
}

// User is read-only in this core; authentication is out of scope.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Avatar  string `json:"avatar,omitempty"`
}

// MockUser is the fixed identity the mock login always resolves to.
func MockUser() User {
	return User{
		ID:      "user-1",
		Name:    "Alex Rivera",
		Email:   "alex@example.com",
		IsAdmin: true,
		Avatar:  "https://i.pravatar.cc/150?u=alex",
	}
}
