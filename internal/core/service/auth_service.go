package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

// AuthService implements login against the user store.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login resolves the user by the exact email+department+role triple and
// verifies the password. A missing user and a wrong password both collapse
// into ErrInvalidCredentials so the response does not reveal which failed.
func (s *AuthService) Login(ctx context.Context, email, password, departmentID string, role domain.Role) (string, *domain.User, error) {
	if email == "" || password == "" || !role.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, email, departmentID, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		Email:      user.Email,
		Role:       user.Role,
		Department: user.DepartmentID,
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
