package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/hubshop/storefront/internal/assistant"
	"github.com/hubshop/storefront/internal/catalog"
	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/transport"
	"github.com/labstack/echo/v4"
)

const assistantTimeout = 15 * time.Second

type AssistantHTTP struct {
	AI      assistant.Assistant
	Catalog *catalog.Store
}

// Chat answers a shopper question grounded in the full catalog. The
// session stays independently mutable while the call is in flight; a
// failed call still answers 200 with the fallback text.
func (h *AssistantHTTP) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "assistant.chat")

	var req transport.ChatRequest
	if err := bindStrict(c, &req); err != nil {
		l.Warn("chat_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Message == "" {
		l.Warn("chat_error", "status", 400, "reason", "message required")
		return echo.NewHTTPError(http.StatusBadRequest, "message required")
	}

	callCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()
	reply := h.AI.ChatReply(callCtx, h.Catalog.List(), req.Message)

	l.Info("chat_success")
	return c.JSON(http.StatusOK, transport.ChatResponse{Reply: reply})
}

func (h *AssistantHTTP) StylingTips(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "assistant.styling")

	id := c.Param("id")
	product, ok := h.Catalog.Get(id)
	if !ok {
		l.Warn("styling_error", "status", 404, "product_id", id)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	callCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()
	tips := h.AI.StylingTips(callCtx, product)

	l.Info("styling_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.StylingResponse{ProductID: id, Tips: tips})
}
