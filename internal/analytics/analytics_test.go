package analytics

import (
	"testing"

	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptyHistory(t *testing.T) {
	s := Summarize(nil)
	require.True(t, s.TotalRevenue.IsZero())
	require.Zero(t, s.ItemsSold)
	require.Zero(t, s.OrderCount)
	require.True(t, s.AverageOrder.IsZero())
}

func TestSummarize(t *testing.T) {
	orders := []models.Order{
		{
			Total: decimal.RequireFromString("59.97"),
			Items: []models.CartLine{{Quantity: 3}},
		},
		{
			Total:  decimal.RequireFromString("100.00"),
			Status: models.OrderStatusCancelled,
			Items:  []models.CartLine{{Quantity: 1}, {Quantity: 2}},
		},
	}

	s := Summarize(orders)
	require.Equal(t, "159.97", s.TotalRevenue.StringFixed(2))
	require.Equal(t, 6, s.ItemsSold)
	require.Equal(t, 2, s.OrderCount)
	require.Equal(t, "79.99", s.AverageOrder.StringFixed(2))
}

func TestMonthlyRevenueSeries(t *testing.T) {
	series := MonthlyRevenue()
	require.Len(t, series, 7)
	require.Equal(t, "Jan", series[0].Month)
	require.Equal(t, int64(4000), series[0].Revenue)
	require.Equal(t, "Jul", series[6].Month)
}
