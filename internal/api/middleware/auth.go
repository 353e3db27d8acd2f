package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-auth-api/internal/api/metrics"
	"github.com/userhub/user-auth-api/internal/core/domain"
	"github.com/userhub/user-auth-api/internal/core/ports"
)

// CtxUserKey is the echo.Context key under which Auth stores the
// authenticated *domain.User.
const CtxUserKey = "auth.user"

// Auth validates the bearer token, loads the corresponding account from the
// store (one lookup per request, never cached) and attaches it to the request
// context. Requests for missing, deactivated or deleted accounts are rejected
// even when the token itself is still valid.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied, no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("bad_token").Inc()
				return err
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("user_not_found").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token, user not found")
			}
			if !user.IsActive {
				metrics.AuthFailuresTotal.WithLabelValues("account_disabled").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrAccountDisabled.Error())
			}

			c.Set(CtxUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser extracts the user attached by Auth. The second return is false
// when the middleware has not run on this request.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(CtxUserKey).(*domain.User)
	return user, ok
}
