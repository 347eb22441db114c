package httpserver

import (
	"net/http"

	"github.com/hubshop/storefront/internal/session"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	Sessions *session.Manager

	CatalogHandler   *CatalogHTTP
	CartHandler      *CartHTTP
	OrderHandler     *OrderHTTP
	SessionHandler   *SessionHTTP
	AssistantHandler *AssistantHTTP
	AdminHandler     *AdminHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api", SessionMiddleware(d.Sessions))

	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)
	api.GET("/products/:id/styling", d.AssistantHandler.StylingTips)

	api.GET("/cart", d.CartHandler.GetCart)
	api.POST("/cart", d.CartHandler.AddToCart)
	api.PATCH("/cart/:key", d.CartHandler.AdjustQuantity)
	api.DELETE("/cart/:key", d.CartHandler.RemoveFromCart)
	api.DELETE("/cart", d.CartHandler.ClearCart)

	api.POST("/checkout", d.OrderHandler.Checkout)
	api.GET("/orders", d.OrderHandler.GetOrders)
	api.GET("/orders/:id", d.OrderHandler.GetOrder)
	api.POST("/orders/:id/cancel", d.OrderHandler.CancelOrder)

	api.GET("/session", d.SessionHandler.GetSession)
	api.POST("/session/view", d.SessionHandler.SetView)
	api.POST("/session/search", d.SessionHandler.SetSearch)
	api.POST("/session/login", d.SessionHandler.Login)
	api.POST("/session/logout", d.SessionHandler.Logout)

	api.POST("/assistant/chat", d.AssistantHandler.Chat)

	api.GET("/admin/summary", d.AdminHandler.Summary)
}
