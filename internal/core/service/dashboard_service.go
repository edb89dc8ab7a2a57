package service

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/ports"
)

// DashboardService aggregates organisation-wide counts.
type DashboardService struct {
	users ports.UserRepository
	depts ports.DepartmentRepository
}

func NewDashboardService(users ports.UserRepository, depts ports.DepartmentRepository) *DashboardService {
	return &DashboardService{users: users, depts: depts}
}

// Summary returns the department and user totals across the whole
// organisation.
func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	deptCount, err := s.depts.Count(ctx)
	if err != nil {
		return nil, err
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSummary{
		TotalDepartments: deptCount,
		TotalEmployees:   userCount,
	}, nil
}
