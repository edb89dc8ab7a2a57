package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")

	svc := NewUserService(users, depts, zerolog.Nop())

	created, err := svc.Create(context.Background(), superAdmin(), ports.CreateUserInput{
		FullName:     "Alice Example",
		Email:        "alice@example.com",
		Role:         domain.RoleEmployee,
		DepartmentID: d1.ID,
		Password:     "Secret123",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.PasswordHash == "Secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Secret123")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestUserService_CreateOutsideDepartmentForbidden(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	d2 := seedDept(t, depts, "operations")

	svc := NewUserService(users, depts, zerolog.Nop())

	_, err := svc.Create(context.Background(), adminOf(d1.ID), ports.CreateUserInput{
		FullName:     "Bob Example",
		Email:        "bob@example.com",
		Role:         domain.RoleEmployee,
		DepartmentID: d2.ID,
		Password:     "Secret123",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_CreateSuperAdminRejected(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")

	svc := NewUserService(users, depts, zerolog.Nop())

	_, err := svc.Create(context.Background(), superAdmin(), ports.CreateUserInput{
		FullName:     "Eve Example",
		Email:        "eve@example.com",
		Role:         domain.RoleSuperAdmin,
		DepartmentID: d1.ID,
		Password:     "Secret123",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_CreateUnknownDepartment(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubDeptRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), superAdmin(), ports.CreateUserInput{
		FullName:     "Carl Example",
		Email:        "carl@example.com",
		Role:         domain.RoleEmployee,
		DepartmentID: "missing",
		Password:     "Secret123",
	})
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestUserService_GetScoped(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	d2 := seedDept(t, depts, "operations")
	target := seedUser(t, users, "target@example.com", "Secret123", d2.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	if _, err := svc.Get(context.Background(), adminOf(d1.ID), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("cross-department read must look like not found, got %v", err)
	}
	if got, err := svc.Get(context.Background(), superAdmin(), target.ID); err != nil || got.ID != target.ID {
		t.Fatalf("super admin read failed: %v", err)
	}
}

func TestUserService_ListScoped(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	d2 := seedDept(t, depts, "operations")
	seedUser(t, users, "a@example.com", "Secret123", d1.ID, domain.RoleEmployee)
	seedUser(t, users, "b@example.com", "Secret123", d2.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	all, err := svc.List(context.Background(), superAdmin())
	if err != nil || len(all) != 2 {
		t.Fatalf("super admin expected 2 users, got %d (%v)", len(all), err)
	}

	scoped, err := svc.List(context.Background(), adminOf(d1.ID))
	if err != nil || len(scoped) != 1 || scoped[0].Email != "a@example.com" {
		t.Fatalf("admin expected only own department users, got %+v (%v)", scoped, err)
	}
}

func TestUserService_UpdateFields(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	target := seedUser(t, users, "old@example.com", "Secret123", d1.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	name := "Renamed User"
	email := "new@example.com"
	role := domain.RoleAdmin
	updated, err := svc.Update(context.Background(), adminOf(d1.ID), target.ID, ports.UpdateUserInput{
		FullName: &name,
		Email:    &email,
		Role:     &role,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != name || updated.Email != email || updated.Role != domain.RoleAdmin {
		t.Fatalf("fields not applied: %+v", updated)
	}
	// untouched fields survive
	if updated.DepartmentID != d1.ID {
		t.Fatalf("department changed unexpectedly: %+v", updated)
	}
}

func TestUserService_UpdateScoped(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	d2 := seedDept(t, depts, "operations")
	target := seedUser(t, users, "target@example.com", "Secret123", d2.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	name := "New Name"
	if _, err := svc.Update(context.Background(), adminOf(d1.ID), target.ID, ports.UpdateUserInput{FullName: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("cross-department update must look like not found, got %v", err)
	}
	if _, err := svc.Update(context.Background(), superAdmin(), target.ID, ports.UpdateUserInput{FullName: &name}); err != nil {
		t.Fatalf("super admin update failed: %v", err)
	}
}

func TestUserService_UpdateEmailCollision(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	seedUser(t, users, "taken@example.com", "Secret123", d1.ID, domain.RoleEmployee)
	target := seedUser(t, users, "free@example.com", "Secret123", d1.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	taken := "taken@example.com"
	if _, err := svc.Update(context.Background(), superAdmin(), target.ID, ports.UpdateUserInput{Email: &taken}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// re-submitting the current email is a no-op, not a collision
	same := "free@example.com"
	if _, err := svc.Update(context.Background(), superAdmin(), target.ID, ports.UpdateUserInput{Email: &same}); err != nil {
		t.Fatalf("self-email update failed: %v", err)
	}
}

func TestUserService_UpdateDepartmentMove(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	d2 := seedDept(t, depts, "operations")
	target := seedUser(t, users, "mover@example.com", "Secret123", d1.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	// an admin cannot move a user into a department it cannot reach
	if _, err := svc.Update(context.Background(), adminOf(d1.ID), target.ID, ports.UpdateUserInput{DepartmentID: &d2.ID}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	missing := "missing"
	if _, err := svc.Update(context.Background(), superAdmin(), target.ID, ports.UpdateUserInput{DepartmentID: &missing}); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}

	moved, err := svc.Update(context.Background(), superAdmin(), target.ID, ports.UpdateUserInput{DepartmentID: &d2.ID})
	if err != nil || moved.DepartmentID != d2.ID {
		t.Fatalf("super admin move failed: %+v (%v)", moved, err)
	}
}

func TestUserService_UpdateSuperAdminRoleRejected(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	target := seedUser(t, users, "emp@example.com", "Secret123", d1.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	role := domain.RoleSuperAdmin
	if _, err := svc.Update(context.Background(), superAdmin(), target.ID, ports.UpdateUserInput{Role: &role}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_DeleteScoped(t *testing.T) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	d1 := seedDept(t, depts, "finance")
	d2 := seedDept(t, depts, "operations")
	target := seedUser(t, users, "victim@example.com", "Secret123", d2.ID, domain.RoleEmployee)

	svc := NewUserService(users, depts, zerolog.Nop())

	if err := svc.Delete(context.Background(), adminOf(d1.ID), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("cross-department delete must look like not found, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminOf(d2.ID), target.ID); err != nil {
		t.Fatalf("own-department delete failed: %v", err)
	}
	if _, err := users.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
}
