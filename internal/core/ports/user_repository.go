package ports

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// UserRepository defines persistence for users. All lookups are exact-match
// equality predicates.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByLogin resolves a user by the exact email+department+role triple
	// submitted at login.
	FindByLogin(ctx context.Context, email, departmentID string, role domain.Role) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	ListByDepartment(ctx context.Context, departmentID string) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
