package domain

import "time"

// Department is the scoping unit for role-based data visibility. Every
// non-super-admin user is restricted to resources of its own department.
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}
