package analytics

import (
	"github.com/hubshop/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ItemsSold    int             `json:"items_sold"`
	OrderCount   int             `json:"order_count"`
	AverageOrder decimal.Decimal `json:"average_order"`
}

// Summarize folds order history into the dashboard headline figures.
// Cancelled orders still count: the dashboard reports placed volume, not
// fulfilled volume.
func Summarize(orders []models.Order) Summary {
	s := Summary{
		TotalRevenue: decimal.Zero,
		AverageOrder: decimal.Zero,
	}
	for _, ord := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(ord.Total)
		s.OrderCount++
		for _, line := range ord.Items {
			s.ItemsSold += line.Quantity
		}
	}
	if s.OrderCount > 0 {
		s.AverageOrder = s.TotalRevenue.DivRound(decimal.NewFromInt(int64(s.OrderCount)), 2)
	}
	return s
}

type MonthlyPoint struct {
	Month   string `json:"name"`
	Revenue int64  `json:"revenue"`
}

// MonthlyRevenue is the fixed demo series the dashboard charts; there is
// no real month-by-month bookkeeping behind it.
func MonthlyRevenue() []MonthlyPoint {
	return []MonthlyPoint{
		{Month: "Jan", Revenue: 4000},
		{Month: "Feb", Revenue: 3000},
		{Month: "Mar", Revenue: 2000},
		{Month: "Apr", Revenue: 2780},
		{Month: "May", Revenue: 1890},
		{Month: "Jun", Revenue: 2390},
		{Month: "Jul", Revenue: 3490},
	}
}
