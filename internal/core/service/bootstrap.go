package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

// BootstrapInput describes the initial super-admin account provisioned on
// first boot. Super-admin accounts cannot be created through the API, so
// without this seed a fresh deployment would have no principal able to
// authenticate.
type BootstrapInput struct {
	FullName   string
	Email      string
	Phone      string
	Password   string
	Department string
}

// EnsureSuperAdmin provisions the initial super admin and its home department.
// Idempotent: when an account with the configured email already exists nothing
// is written.
func EnsureSuperAdmin(ctx context.Context, users ports.UserRepository, depts ports.DepartmentRepository, input BootstrapInput, log zerolog.Logger) error {
	if _, err := users.FindByEmail(ctx, input.Email); err == nil {
		log.Info().Str("email", input.Email).Msg("super admin already provisioned")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	now := time.Now().UTC()

	dept, err := depts.FindByName(ctx, input.Department)
	if errors.Is(err, domain.ErrDepartmentNotFound) {
		dept, err = depts.Create(ctx, &domain.Department{
			Name:      input.Department,
			CreatedAt: now,
		})
	}
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := users.Create(ctx, &domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         domain.RoleSuperAdmin,
		DepartmentID: dept.ID,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	log.Info().Str("email", input.Email).Str("department", dept.Name).Msg("super admin created")
	return nil
}
