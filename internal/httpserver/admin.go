package httpserver

import (
	"context"
	"net/http"

	"github.com/hubshop/storefront/internal/analytics"
	"github.com/hubshop/storefront/internal/assistant"
	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/transport"
	"github.com/labstack/echo/v4"
)

type AdminHTTP struct {
	AI assistant.Assistant
}

// Summary serves the dashboard figures plus the AI executive summary.
// Admin users only.
func (h *AdminHTTP) Summary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.summary")

	st := stateFrom(c)
	user := st.User()
	if user == nil || !user.IsAdmin {
		l.Warn("admin_summary_error", "status", 403)
		return echo.NewHTTPError(http.StatusForbidden, "admin only")
	}

	orders := st.AllOrders()

	callCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()
	summary := h.AI.ExecutiveSummary(callCtx, orders)

	l.Info("admin_summary_success", "orders", len(orders))
	return c.JSON(http.StatusOK, transport.AdminSummaryResponse{
		Figures:          analytics.Summarize(orders),
		MonthlyRevenue:   analytics.MonthlyRevenue(),
		ExecutiveSummary: summary,
	})
}
