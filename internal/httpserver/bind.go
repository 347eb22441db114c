package httpserver

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes the request body into v and rejects unknown fields,
// keeping the typed records closed at the boundary.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
