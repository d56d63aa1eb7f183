package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minitweet/api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. A missing
// or zero id means the middleware did not run on this route; fail with 401
// before any service call.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.ContextUserIDKey).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
