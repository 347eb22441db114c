package httpserver

import (
	"net/http"

	"github.com/hubshop/storefront/internal/session"
	"github.com/labstack/echo/v4"
)

const sessionCookie = "hub_session"

// SessionMiddleware resolves the session state for the request's cookie,
// creating a fresh session for first-time or expired visitors, and makes
// it available to handlers via stateFrom.
func SessionMiddleware(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if ck, err := c.Cookie(sessionCookie); err == nil {
				id = ck.Value
			}

			st := mgr.GetOrCreate(id)
			if st.ID != id {
				c.SetCookie(&http.Cookie{
					Name:     sessionCookie,
					Value:    st.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set("session", st)
			return next(c)
		}
	}
}

func stateFrom(c echo.Context) *session.State {
	st, _ := c.Get("session").(*session.State)
	return st
}
