package ports

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// CreateDepartmentInput carries the fields accepted when adding a department.
type CreateDepartmentInput struct {
	Name  string
	Email string
	City  string
	State string
}

// UpdateDepartmentInput carries optional fields for a partial update.
type UpdateDepartmentInput struct {
	Name  *string
	Email *string
	City  *string
	State *string
}

// DepartmentService exposes department CRUD with department scoping applied
// from the acting principal.
type DepartmentService interface {
	List(ctx context.Context, principal *domain.User) ([]domain.Department, error)
	Get(ctx context.Context, principal *domain.User, id string) (*domain.Department, error)
	Create(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, principal *domain.User, id string, input UpdateDepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) (*domain.Department, error)
}
