package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medrecords/patient-system/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware and
// fast-fails when it is absent; presence proves the middleware ran.
func ctxUserID(c echo.Context) (int, error) {
	id, ok := c.Get(middleware.CtxUserID).(int)
	if !ok || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}
