package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgdesk/admin-api/internal/api/middleware"
	"github.com/orgdesk/admin-api/internal/core/domain"
)

// principal extracts the user attached by the Authorize middleware. A miss
// means the route was wired without a guard; fail closed with 401.
func principal(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.PrincipalKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
