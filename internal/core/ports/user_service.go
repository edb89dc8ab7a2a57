package ports

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when onboarding a user.
// Super-admin accounts are provisioned out of band, never through the API.
type CreateUserInput struct {
	FullName     string
	Email        string
	Phone        string
	Role         domain.Role
	DepartmentID string
	DistrictID   int
	DistrictName string
	Password     string
}

// UpdateUserInput carries the optional fields of a partial user update. Nil
// fields are left untouched.
type UpdateUserInput struct {
	FullName     *string
	Email        *string
	Phone        *string
	Role         *domain.Role
	DepartmentID *string
	DistrictID   *int
	DistrictName *string
}

// UserService exposes user CRUD with department scoping applied from the
// acting principal.
type UserService interface {
	Create(ctx context.Context, principal *domain.User, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, principal *domain.User, id string) (*domain.User, error)
	List(ctx context.Context, principal *domain.User) ([]domain.User, error)
	Update(ctx context.Context, principal *domain.User, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, principal *domain.User, id string) error
}
