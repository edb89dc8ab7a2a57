package domain

import "time"

// Role is the RBAC role attached to every user.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEmployee   Role = "employee"
)

// AllRoles lists every known role, used by guards that require
// authentication only.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleEmployee}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// User models an authenticated actor. The password hash is persisted but
// never serialised into any API response.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	DepartmentID string    `json:"department_id"`
	DistrictID   int       `json:"district_id,omitempty"`
	DistrictName string    `json:"district_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CanAccessDepartment reports whether the user may touch data belonging to
// the given department. Super admins bypass department scoping entirely.
func (u *User) CanAccessDepartment(departmentID string) bool {
	return u.Role == RoleSuperAdmin || u.DepartmentID == departmentID
}
