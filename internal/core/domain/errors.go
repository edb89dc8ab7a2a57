package domain

import "errors"

// Token validation outcomes. Validate returns exactly one of these so
// callers can branch without inspecting library error types.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenNotYetValid = errors.New("token not yet valid")
)

// Auth and directory errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
)

// Password reset errors. ErrResetNotCommittable deliberately collapses
// "unknown request id" and "not yet verified" into one message so the
// commit endpoint does not reveal which half of the check failed.
var (
	ErrResetNotFound       = errors.New("reset request not found")
	ErrResetNotCommittable = errors.New("reset request not found or not verified")
	ErrInvalidOTP          = errors.New("invalid OTP")
	ErrOTPExpired          = errors.New("OTP expired")
	ErrTooManyResets       = errors.New("too many reset requests")
	ErrMailRejected        = errors.New("mail delivery rejected")
)
