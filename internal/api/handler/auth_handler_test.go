package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthService) Login(context.Context, string, string, string, domain.Role) (string, *domain.User, error) {
	return s.token, s.user, s.err
}

type stubResetService struct {
	result *ports.ResetRequestResult
	err    error
}

func (s *stubResetService) Request(context.Context, string) (*ports.ResetRequestResult, error) {
	return s.result, s.err
}

func (s *stubResetService) Verify(context.Context, string, string, string) error {
	return s.err
}

func (s *stubResetService) Commit(context.Context, string, string) error {
	return s.err
}

func newHandlerContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	user := &domain.User{
		ID:           "1",
		Email:        "alice@example.com",
		Role:         domain.RoleAdmin,
		DepartmentID: "dept_1",
		PasswordHash: "$2a$10$secrethash",
	}
	h := NewAuthHandler(&stubAuthService{token: "signed-token", user: user}, &stubResetService{})

	c, rec := newHandlerContext(t, `{"email":"alice@example.com","password":"Secret123","department":"dept_1","role":"admin"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}

	// the password hash must never appear in any response
	if strings.Contains(rec.Body.String(), "secrethash") {
		t.Fatalf("password hash leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ValidationRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubResetService{})

	cases := []string{
		`{"email":"not-an-email","password":"Secret123","department":"d","role":"admin"}`,
		`{"email":"a@x.com","password":"short","department":"d","role":"admin"}`,
		`{"email":"a@x.com","password":"Secret123","department":"d","role":"owner"}`,
	}
	for _, body := range cases {
		c, _ := newHandlerContext(t, body)
		err := h.Login(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, &stubResetService{})

	c, _ := newHandlerContext(t, `{"email":"a@x.com","password":"Secret123","department":"d","role":"admin"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_VerifyOTP_LengthEnforced(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubResetService{})

	c, _ := newHandlerContext(t, `{"email":"a@x.com","otp":"12345","request_id":"req_1"}`)
	err := h.VerifyOTP(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a 5-digit OTP, got %v", err)
	}
}

func TestAuthHandler_RequestReset_NeverEchoesOTP(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubResetService{
		result: &ports.ResetRequestResult{Email: "a@x.com", RequestID: "req_1"},
	})

	c, rec := newHandlerContext(t, `{"email":"a@x.com"}`)
	if err := h.RequestReset(c); err != nil {
		t.Fatalf("request handler error: %v", err)
	}

	var resp ports.ResetRequestResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RequestID != "req_1" || resp.Email != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
