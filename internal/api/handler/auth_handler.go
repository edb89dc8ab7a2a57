package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgdesk/admin-api/internal/api/metrics"
	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	resetService ports.ResetService
}

func NewAuthHandler(authService ports.AuthService, resetService ports.ResetService) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService}
}

type loginRequest struct {
	Email      string      `json:"email" validate:"required,email"`
	Password   string      `json:"password" validate:"required,min=8,max=20"`
	Department string      `json:"department" validate:"required"`
	Role       domain.Role `json:"role" validate:"required,oneof=super_admin admin employee"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.Department, req.Role)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

type resetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestReset generates a password-reset OTP and mails it to the user.
//
// @Summary      Request a password-reset OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestRequest  true  "Account email"
// @Success      200   {object}  ports.ResetRequestResult
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/reset/request [post]
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.resetService.Request(c.Request().Context(), req.Email)
	if err != nil {
		metrics.ResetStepsTotal.WithLabelValues("request", "failure").Inc()
		return err
	}

	metrics.ResetStepsTotal.WithLabelValues("request", "success").Inc()
	return c.JSON(http.StatusOK, result)
}

type verifyOTPRequest struct {
	Email     string `json:"email" validate:"required,email"`
	OTP       string `json:"otp" validate:"required,len=6"`
	RequestID string `json:"request_id" validate:"required"`
}

// VerifyOTP checks a submitted OTP against an open reset request.
//
// @Summary      Verify a password-reset OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "OTP verification"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/reset/verify [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resetService.Verify(c.Request().Context(), req.Email, req.OTP, req.RequestID); err != nil {
		metrics.ResetStepsTotal.WithLabelValues("verify", "failure").Inc()
		return err
	}

	metrics.ResetStepsTotal.WithLabelValues("verify", "success").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"verified": true})
}

type commitResetRequest struct {
	RequestID string `json:"request_id" validate:"required"`
	Password  string `json:"password" validate:"required,min=8,max=20"`
}

// CommitReset replaces the password for a verified reset request.
//
// @Summary      Commit a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      commitResetRequest  true  "New password"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/reset [post]
func (h *AuthHandler) CommitReset(c echo.Context) error {
	var req commitResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resetService.Commit(c.Request().Context(), req.RequestID, req.Password); err != nil {
		metrics.ResetStepsTotal.WithLabelValues("commit", "failure").Inc()
		return err
	}

	metrics.ResetStepsTotal.WithLabelValues("commit", "success").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"reset": true})
}
