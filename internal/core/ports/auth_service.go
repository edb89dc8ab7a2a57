package ports

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// AuthService authenticates users and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password, departmentID string, role domain.Role) (string, *domain.User, error)
}
