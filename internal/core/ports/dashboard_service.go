package ports

import "context"

// DashboardSummary aggregates organisation-wide counts for the admin
// dashboard.
type DashboardSummary struct {
	TotalDepartments int64 `json:"total_departments"`
	TotalEmployees   int64 `json:"total_employees"`
}

// DashboardService produces aggregate views over the organisation.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
