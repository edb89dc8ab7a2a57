package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

const otpModulus = 1000000 // codes are uniform over 000000-999999

// ResetService drives the password-reset state machine. Each request step
// creates a fresh ResetRequest row; concurrent requests for one user are not
// deduplicated and resolve independently by request id.
type ResetService struct {
	users   ports.UserRepository
	resets  ports.ResetRepository
	mailer  ports.Mailer
	limiter ports.ResetLimiter
	notify  ports.Notifier
	otpTTL  time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

func NewResetService(
	users ports.UserRepository,
	resets ports.ResetRepository,
	mailer ports.Mailer,
	limiter ports.ResetLimiter,
	notify ports.Notifier,
	otpTTL time.Duration,
	log zerolog.Logger,
) *ResetService {
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	return &ResetService{
		users:   users,
		resets:  resets,
		mailer:  mailer,
		limiter: limiter,
		notify:  notify,
		otpTTL:  otpTTL,
		now:     time.Now,
		log:     log,
	}
}

// Request generates a 6-digit OTP for the user, persists its hash, and mails
// the plaintext code. Mail rejection fails the call; the already-persisted
// row stays behind and ages out via the TTL check on verify/commit.
func (s *ResetService) Request(ctx context.Context, email string) (*ports.ResetRequestResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("reset limiter: %w", err)
		}
		if !ok {
			return nil, domain.ErrTooManyResets
		}
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash otp: %w", err)
	}

	req, err := s.resets.Create(ctx, &domain.ResetRequest{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		OTPHash:   string(hash),
		Verified:  false,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert reset request: %w", err)
	}

	s.log.Info().Str("email", email).Str("request_id", req.ID).Msg("sending reset OTP")

	body := fmt.Sprintf(
		"Hello %s, you have requested to reset your password. Use this OTP to reset your password: %s",
		user.FullName, otp,
	)
	if err := s.mailer.Send(ctx, user.Email, "OTP for password reset", body); err != nil {
		return nil, err
	}

	return &ports.ResetRequestResult{Email: user.Email, RequestID: req.ID}, nil
}

// Verify checks the submitted code against the stored hash and marks the
// request verified. The row is looked up by both user and request id, so a
// request id belonging to another account never matches.
func (s *ResetService) Verify(ctx context.Context, email, otp, requestID string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	req, err := s.resets.FindByIDAndUser(ctx, requestID, user.ID)
	if err != nil {
		return err
	}

	if req.ExpiredAt(s.now(), s.otpTTL) {
		return domain.ErrOTPExpired
	}

	if bcrypt.CompareHashAndPassword([]byte(req.OTPHash), []byte(otp)) != nil {
		return domain.ErrInvalidOTP
	}

	return s.resets.MarkVerified(ctx, req.ID)
}

// Commit replaces the user's password and consumes the reset request. Only a
// verified request qualifies; an unknown id and an unverified row produce the
// same error. Deleting the row is what makes the request single-use.
func (s *ResetService) Commit(ctx context.Context, requestID, newPassword string) error {
	req, err := s.resets.FindVerified(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrResetNotFound) {
			return domain.ErrResetNotCommittable
		}
		return err
	}

	if req.ExpiredAt(s.now(), s.otpTTL) {
		return domain.ErrOTPExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, req.UserID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.resets.Delete(ctx, req.ID); err != nil {
		return fmt.Errorf("consume reset request: %w", err)
	}

	if s.notify != nil {
		if user, err := s.users.FindByID(ctx, req.UserID); err == nil {
			s.notify.Enqueue(user.Email, "Your password was changed",
				fmt.Sprintf("Hello %s, the password for your account was just reset. If this was not you, contact your administrator.", user.FullName))
		}
	}

	return nil
}

// generateOTP draws a uniformly distributed 6-digit code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpModulus))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
