package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

// UserService implements user onboarding and lookup with department scoping.
type UserService struct {
	users ports.UserRepository
	depts ports.DepartmentRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, depts ports.DepartmentRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, depts: depts, log: log}
}

// Create onboards a user into a department. Super-admin accounts cannot be
// created through the API, and an admin may only create users inside its own
// department.
func (s *UserService) Create(ctx context.Context, principal *domain.User, input ports.CreateUserInput) (*domain.User, error) {
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleEmployee {
		return nil, domain.ErrInvalidRole
	}

	dept, err := s.depts.FindByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}

	if !principal.CanAccessDepartment(dept.ID) {
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		DepartmentID: dept.ID,
		DistrictID:   input.DistrictID,
		DistrictName: input.DistrictName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("department_id", dept.ID).Msg("user created")
	return created, nil
}

// Get fetches a user by id. Out-of-department reads resolve as not found so
// existence is not leaked across departments.
func (s *UserService) Get(ctx context.Context, principal *domain.User, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccessDepartment(user.DepartmentID) {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List returns all users for super admins, otherwise only the principal's
// department.
func (s *UserService) List(ctx context.Context, principal *domain.User) ([]domain.User, error) {
	if principal.Role == domain.RoleSuperAdmin {
		return s.users.ListAll(ctx)
	}
	return s.users.ListByDepartment(ctx, principal.DepartmentID)
}

// Update applies a partial update to a user. The target is resolved with the
// same department scoping as Get, an email change must not collide with
// another account, and a department move is only open to principals who can
// reach the destination department.
func (s *UserService) Update(ctx context.Context, principal *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanAccessDepartment(user.DepartmentID) {
		return nil, domain.ErrUserNotFound
	}

	if input.Role != nil {
		if *input.Role != domain.RoleAdmin && *input.Role != domain.RoleEmployee {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *input.Email)
		if err == nil && existing.ID != user.ID {
			return nil, domain.ErrUserExists
		}
		user.Email = *input.Email
	}

	if input.DepartmentID != nil && *input.DepartmentID != user.DepartmentID {
		dept, err := s.depts.FindByID(ctx, *input.DepartmentID)
		if err != nil {
			return nil, err
		}
		if !principal.CanAccessDepartment(dept.ID) {
			return nil, domain.ErrForbidden
		}
		user.DepartmentID = dept.ID
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.DistrictID != nil {
		user.DistrictID = *input.DistrictID
	}
	if input.DistrictName != nil {
		user.DistrictName = *input.DistrictName
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a user by id. Out-of-department targets resolve as not found,
// the same as Get.
func (s *UserService) Delete(ctx context.Context, principal *domain.User, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.CanAccessDepartment(user.DepartmentID) {
		return domain.ErrUserNotFound
	}
	return s.users.Delete(ctx, user.ID)
}
