package ports

import "github.com/orgdesk/admin-api/internal/core/domain"

// TokenClaims is the structured payload carried inside an issued token.
type TokenClaims struct {
	Email      string
	Role       domain.Role
	Department string
}

// TokenService issues and validates signed, time-limited tokens. Validate
// returns one of the domain token errors (ErrTokenExpired, ErrTokenMalformed,
// ErrTokenNotYetValid) instead of library-specific failures.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	Validate(token string) (*TokenClaims, error)
}
