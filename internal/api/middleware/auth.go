package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orgdesk/admin-api/internal/api/metrics"
	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which the resolved user is
// stored for downstream handlers.
const PrincipalKey = "principal"

// Authorize validates the bearer token, re-resolves the principal from the
// user store, and enforces membership in the required role set.
//
// The role check runs against the user's CURRENT record, not the token's
// role claim: a role change in the store takes effect on the very next
// request, closing the privilege-escalation window of a stale token. The
// cost is one store read per authorized request.
func Authorize(users ports.UserRepository, tokens ports.TokenService, roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.GuardRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GuardRejectionsTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues("invalid_token").Inc()
				// surface the specific token error kind as the 401 detail
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.GuardRejectionsTotal.WithLabelValues("unknown_principal").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			if _, ok := allowed[user.Role]; !ok {
				metrics.GuardRejectionsTotal.WithLabelValues("role_mismatch").Inc()
				return domain.ErrForbidden
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}

// AuthorizeAny is a guard accepting every role, for routes that require
// authentication but no specific privilege.
func AuthorizeAny(users ports.UserRepository, tokens ports.TokenService) echo.MiddlewareFunc {
	return Authorize(users, tokens, domain.AllRoles...)
}
