package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/hubshop/storefront/internal/models"
)

func ChatPrompt(products []models.Product, query string) string {
	data, _ := json.Marshal(products)
	return fmt.Sprintf(
		"User is asking: %q. Based on these products: %s, recommend the best ones and explain why. Keep it concise and friendly.",
		query, data,
	)
}

func StylingPrompt(p models.Product) string {
	data, _ := json.Marshal(p)
	return fmt.Sprintf(
		"Act as a personal stylist for a premium boutique. Give short, practical styling tips for this product: %s. Two or three sentences, warm tone.",
		data,
	)
}

func SummaryPrompt(orders []models.Order) string {
	data, _ := json.Marshal(orders)
	return fmt.Sprintf(
		"Analyze these recent orders and provide a quick executive summary for the store owner: %s. Mention total revenue, popular trends, and one growth tip.",
		data,
	)
}
