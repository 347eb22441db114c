package httpserver

import (
	"errors"
	"net/http"

	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/session"
	"github.com/hubshop/storefront/internal/transport"
	"github.com/labstack/echo/v4"
)

type SessionHTTP struct{}

func sessionResponse(st *session.State) transport.SessionResponse {
	_, _, count := st.CartContents()
	return transport.SessionResponse{
		View:        string(st.View()),
		User:        st.User(),
		SearchQuery: st.Search(),
		CartCount:   count,
	}
}

func (h *SessionHTTP) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse(stateFrom(c)))
}

func (h *SessionHTTP) SetView(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.set_view")

	var req transport.SetViewRequest
	if err := bindStrict(c, &req); err != nil {
		l.Warn("set_view_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := stateFrom(c).SetView(session.View(req.View)); err != nil {
		if errors.Is(err, session.ErrUnknownView) {
			l.Warn("set_view_error", "status", 400, "view", req.View)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown view")
		}
		l.Error("set_view_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("set_view_success", "view", req.View)
	return c.JSON(http.StatusOK, sessionResponse(stateFrom(c)))
}

func (h *SessionHTTP) SetSearch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.set_search")

	var req transport.SearchRequest
	if err := bindStrict(c, &req); err != nil {
		l.Warn("set_search_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	stateFrom(c).SetSearch(req.Query)
	return c.JSON(http.StatusOK, sessionResponse(stateFrom(c)))
}

func (h *SessionHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.login")

	user := stateFrom(c).Login()

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *SessionHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.logout")

	stateFrom(c).Logout()

	l.Info("logout_success")
	return c.JSON(http.StatusOK, sessionResponse(stateFrom(c)))
}
