package httpserver

import (
	"net/http"

	"github.com/hubshop/storefront/internal/catalog"
	"github.com/hubshop/storefront/internal/logging"
	"github.com/labstack/echo/v4"
)

type CatalogHTTP struct {
	Store *catalog.Store
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	q := c.QueryParam("q")
	items := h.Store.Filter(q)

	l.Info("get_products_success", "query", q, "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id := c.Param("id")
	product, ok := h.Store.Get(id)
	if !ok {
		l.Warn("get_product_failed", "status", 404, "product_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	return c.JSON(http.StatusOK, product)
}
