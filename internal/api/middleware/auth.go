package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medrecords/patient-system/internal/api/metrics"
	"github.com/medrecords/patient-system/internal/auth"
	"github.com/medrecords/patient-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID   = "userId"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects the resolved identity into
// the request context. Token claims alone are not trusted: the user is
// re-resolved from the live credential store on every request, so a stale
// token for a disabled or vanished account fails immediately rather than
// on next token refresh.
func Auth(tokens *auth.TokenManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if user.IsDisabled {
				metrics.AuthRejectionsTotal.WithLabelValues("disabled_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUsername, user.Username)
			c.Set(CtxRole, user.Role)

			return next(c)
		}
	}
}
