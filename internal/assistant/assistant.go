package assistant

import (
	"context"

	"github.com/hubshop/storefront/internal/models"
)

// Fallback texts returned whenever the generative API cannot answer. The
// UI never blocks or fails on assistant unavailability; it shows these
// instead.
const (
	ChatFallback    = "I couldn't get insights right now, but feel free to browse our collection!"
	StylingFallback = "Styling tips are unavailable right now, but this piece speaks for itself."
	SummaryFallback = "Executive summary unavailable."
)

// Assistant is the single boundary to the generative API. Implementations
// soft-fail: every method returns usable text, never an error.
type Assistant interface {
	// ChatReply answers a free-text shopper question grounded in the
	// given products.
	ChatReply(ctx context.Context, products []models.Product, userText string) string
	// StylingTips suggests how to wear or use one product.
	StylingTips(ctx context.Context, product models.Product) string
	// ExecutiveSummary condenses recent orders for the store owner.
	ExecutiveSummary(ctx context.Context, orders []models.Order) string
}

// Disabled always answers with the fallback texts. Used when no API key
// is configured and as the zero-cost test double.
type Disabled struct{}

func (Disabled) ChatReply(context.Context, []models.Product, string) string {
	return ChatFallback
}

func (Disabled) StylingTips(context.Context, models.Product) string {
	return StylingFallback
}

func (Disabled) ExecutiveSummary(context.Context, []models.Order) string {
	return SummaryFallback
}
