package transport

import (
	"github.com/hubshop/storefront/internal/analytics"
	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	Lines     []models.CartLine `json:"lines"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	ItemCount int               `json:"item_count"`
}

type SetViewRequest struct {
	View string `json:"view"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SessionResponse struct {
	View        string       `json:"view"`
	User        *models.User `json:"user,omitempty"`
	SearchQuery string       `json:"search_query"`
	CartCount   int          `json:"cart_count"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type StylingResponse struct {
	ProductID string `json:"product_id"`
	Tips      string `json:"tips"`
}

type AdminSummaryResponse struct {
	Figures          analytics.Summary        `json:"figures"`
	MonthlyRevenue   []analytics.MonthlyPoint `json:"monthly_revenue"`
	ExecutiveSummary string                   `json:"executive_summary"`
}
