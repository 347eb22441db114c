package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hubshop/storefront/internal/assistant"
	"github.com/hubshop/storefront/internal/catalog"
	"github.com/hubshop/storefront/internal/config"
	"github.com/hubshop/storefront/internal/httpserver"
	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/session"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)

	store := catalog.NewStore(catalog.Seed())
	sessions := session.NewManager(cfg.SessionTTL)

	var ai assistant.Assistant = assistant.Disabled{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiChatModel, cfg.GeminiSummaryModel)
		if err != nil {
			// Soft-fail policy covers startup too: run without the
			// assistant rather than refusing to serve the store.
			logger.Warn("assistant_disabled", "error", err)
		} else {
			ai = gemini
		}
	} else {
		logger.Info("assistant_disabled", "reason", "no GEMINI_API_KEY")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), logger)))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		Sessions:         sessions,
		CatalogHandler:   &httpserver.CatalogHTTP{Store: store},
		CartHandler:      &httpserver.CartHTTP{Catalog: store},
		OrderHandler:     &httpserver.OrderHTTP{},
		SessionHandler:   &httpserver.SessionHTTP{},
		AssistantHandler: &httpserver.AssistantHTTP{AI: ai, Catalog: store},
		AdminHandler:     &httpserver.AdminHTTP{AI: ai},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", srv.Addr, "service", cfg.ServiceName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	logger.Info("shutdown_complete")
}
