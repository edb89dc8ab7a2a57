package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orgdesk/admin-api/internal/core/domain"
)

func newErrContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_CanonicalMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrTokenMalformed, http.StatusUnauthorized},
		{domain.ErrTokenNotYetValid, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrDepartmentNotFound, http.StatusNotFound},
		{domain.ErrResetNotFound, http.StatusNotFound},
		{domain.ErrResetNotCommittable, http.StatusNotFound},
		{domain.ErrInvalidOTP, http.StatusBadRequest},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrOTPExpired, http.StatusBadRequest},
		{domain.ErrUserExists, http.StatusBadRequest},
		{domain.ErrDepartmentExists, http.StatusBadRequest},
		{domain.ErrMailRejected, http.StatusBadRequest},
		{domain.ErrTooManyResets, http.StatusTooManyRequests},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := resolveError(tc.err, zerolog.Nop(), newErrContext())
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestResolveError_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := resolveError(errors.New("pq: connection refused"), zerolog.Nop(), newErrContext())
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal cause leaked to client: %q", msg)
	}
}

func TestResolveError_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), zerolog.Nop(), newErrContext())
	if code != http.StatusUnauthorized || msg != "missing authorization header" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrInvalidOTP)
	code, _ := resolveError(wrapped, zerolog.Nop(), newErrContext())
	if code != http.StatusBadRequest {
		t.Fatalf("wrapped domain error not recognised, got %d", code)
	}
}
