package ports

import (
	"context"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

// ResetRepository defines persistence for password-reset requests. Each row
// is resolved independently by request id; concurrent requests for the same
// user are not deduplicated.
type ResetRepository interface {
	Create(ctx context.Context, req *domain.ResetRequest) (*domain.ResetRequest, error)
	// FindByIDAndUser matches on both the request id and the owning user,
	// which is what prevents cross-account request-id guessing.
	FindByIDAndUser(ctx context.Context, id, userID string) (*domain.ResetRequest, error)
	// FindVerified returns the request only when it exists AND is verified.
	FindVerified(ctx context.Context, id string) (*domain.ResetRequest, error)
	MarkVerified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
