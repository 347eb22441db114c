package httpserver

import (
	"errors"
	"net/http"

	"github.com/hubshop/storefront/internal/cart"
	"github.com/hubshop/storefront/internal/catalog"
	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/transport"
	"github.com/labstack/echo/v4"
)

type CartHTTP struct {
	Catalog *catalog.Store
}

func (h *CartHTTP) cartResponse(c echo.Context) transport.CartResponse {
	lines, subtotal, count := stateFrom(c).CartContents()
	return transport.CartResponse{Lines: lines, Subtotal: subtotal, ItemCount: count}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartResponse(c))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := bindStrict(c, &req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == "" {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product_id required")
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, ok := h.Catalog.Get(req.ProductID)
	if !ok {
		l.Warn("add_to_cart_error", "status", 404, "product_id", req.ProductID)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	if err := stateFrom(c).AddToCart(product, req.Quantity, req.Size); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			l.Warn("add_to_cart_error", "status", 400, "reason", "invalid quantity", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("add_to_cart_success", "product_id", req.ProductID, "quantity", req.Quantity)
	return c.JSON(http.StatusCreated, h.cartResponse(c))
}

func (h *CartHTTP) AdjustQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.adjust")

	var req transport.AdjustQuantityRequest
	if err := bindStrict(c, &req); err != nil {
		l.Warn("adjust_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	stateFrom(c).AdjustCartQuantity(c.Param("key"), req.Delta)

	l.Info("adjust_cart_success", "key", c.Param("key"), "delta", req.Delta)
	return c.JSON(http.StatusOK, h.cartResponse(c))
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	stateFrom(c).RemoveFromCart(c.Param("key"))

	l.Info("remove_from_cart_success", "key", c.Param("key"))
	return c.JSON(http.StatusOK, h.cartResponse(c))
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	stateFrom(c).ClearCart()

	l.Info("clear_cart_success")
	return c.JSON(http.StatusOK, h.cartResponse(c))
}
