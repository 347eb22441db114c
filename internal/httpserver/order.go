package httpserver

import (
	"errors"
	"net/http"

	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/order"
	"github.com/labstack/echo/v4"
)

type OrderHTTP struct{}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	ord, err := stateFrom(c).Checkout()
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			l.Warn("checkout_error", "status", 409, "reason", "empty cart")
			return echo.NewHTTPError(http.StatusConflict, "cart is empty")
		}
		if errors.Is(err, order.ErrValidation) {
			l.Warn("checkout_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid cart contents")
		}
		l.Error("checkout_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("checkout_success", "order_id", ord.ID, "total", ord.Total.String())
	return c.JSON(http.StatusCreated, ord)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, stateFrom(c).Orders())
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	ord, err := stateFrom(c).GetOrder(c.Param("id"))
	if err != nil {
		l.Warn("get_order_failed", "status", 404, "order_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	return c.JSON(http.StatusOK, ord)
}

func (h *OrderHTTP) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	ord, err := stateFrom(c).CancelOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			l.Warn("cancel_order_failed", "status", 404, "order_id", c.Param("id"))
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		if errors.Is(err, order.ErrAlreadyCancelled) {
			l.Warn("cancel_order_failed", "status", 409, "order_id", c.Param("id"))
			return echo.NewHTTPError(http.StatusConflict, "order already cancelled")
		}
		l.Error("cancel_order_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cancel_order_success", "order_id", ord.ID)
	return c.JSON(http.StatusOK, ord)
}
