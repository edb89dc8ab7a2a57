package ports

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// DepartmentRepository defines persistence for departments.
type DepartmentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	FindByName(ctx context.Context, name string) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id string) (*domain.Department, error)
	ListAll(ctx context.Context) ([]domain.Department, error)
	Count(ctx context.Context) (int64, error)
}
