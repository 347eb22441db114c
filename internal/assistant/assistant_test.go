package assistant

import (
	"context"
	"testing"

	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDisabledAlwaysFallsBack(t *testing.T) {
	var a Assistant = Disabled{}
	ctx := context.Background()

	require.Equal(t, ChatFallback, a.ChatReply(ctx, nil, "any question"))
	require.Equal(t, StylingFallback, a.StylingTips(ctx, models.Product{}))
	require.Equal(t, SummaryFallback, a.ExecutiveSummary(ctx, nil))
}

func TestChatPromptEmbedsCatalogAndQuestion(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Aura Headphones", Price: decimal.RequireFromString("299.99")},
	}

	prompt := ChatPrompt(products, "what should I buy?")
	require.Contains(t, prompt, `"what should I buy?"`)
	require.Contains(t, prompt, "Aura Headphones")
	require.Contains(t, prompt, "recommend the best ones")
}

func TestStylingPromptEmbedsProduct(t *testing.T) {
	p := models.Product{ID: "6", Name: "Suede Chelsea Boots", Price: decimal.RequireFromString("210.00")}

	prompt := StylingPrompt(p)
	require.Contains(t, prompt, "Suede Chelsea Boots")
	require.Contains(t, prompt, "styling tips")
}

func TestSummaryPromptEmbedsOrders(t *testing.T) {
	orders := []models.Order{
		{ID: "ord-1", Total: decimal.RequireFromString("59.97")},
	}

	prompt := SummaryPrompt(orders)
	require.Contains(t, prompt, "ord-1")
	require.Contains(t, prompt, "executive summary")
	require.Contains(t, prompt, "one growth tip")
}
