package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

// DepartmentService implements department CRUD with principal-based scoping.
type DepartmentService struct {
	repo ports.DepartmentRepository
	log  zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, log: log}
}

// List returns every department for super admins and only the principal's
// own department for everyone else.
func (s *DepartmentService) List(ctx context.Context, principal *domain.User) ([]domain.Department, error) {
	if principal.Role == domain.RoleSuperAdmin {
		return s.repo.ListAll(ctx)
	}

	dept, err := s.repo.FindByID(ctx, principal.DepartmentID)
	if err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return []domain.Department{}, nil
		}
		return nil, err
	}
	return []domain.Department{*dept}, nil
}

// Get fetches a department by id. Non-super principals only see their own;
// anything else reads as not found rather than forbidden, so ids outside the
// caller's scope are not confirmed to exist.
func (s *DepartmentService) Get(ctx context.Context, principal *domain.User, id string) (*domain.Department, error) {
	if !principal.CanAccessDepartment(id) {
		return nil, domain.ErrDepartmentNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// Create adds a department; duplicate names are rejected.
func (s *DepartmentService) Create(ctx context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	if _, err := s.repo.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrDepartmentExists
	} else if !errors.Is(err, domain.ErrDepartmentNotFound) {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.Department{
		Name:      input.Name,
		Email:     input.Email,
		City:      input.City,
		State:     input.State,
		CreatedAt: time.Now().UTC(),
	})
}

// Update applies a partial update. Admins may only update their own
// department; a rename colliding with another department is rejected.
func (s *DepartmentService) Update(ctx context.Context, principal *domain.User, id string, input ports.UpdateDepartmentInput) (*domain.Department, error) {
	if !principal.CanAccessDepartment(id) {
		return nil, domain.ErrDepartmentNotFound
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != dept.Name {
		if other, err := s.repo.FindByName(ctx, *input.Name); err == nil && other.ID != id {
			return nil, domain.ErrDepartmentExists
		} else if err != nil && !errors.Is(err, domain.ErrDepartmentNotFound) {
			return nil, err
		}
		dept.Name = *input.Name
	}
	if input.Email != nil {
		dept.Email = *input.Email
	}
	if input.City != nil {
		dept.City = *input.City
	}
	if input.State != nil {
		dept.State = *input.State
	}

	return s.repo.Update(ctx, dept)
}

// Delete removes a department by id.
func (s *DepartmentService) Delete(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("department_id", id).Str("name", dept.Name).Msg("department deleted")
	return dept, nil
}
