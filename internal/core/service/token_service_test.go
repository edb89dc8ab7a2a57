package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	in := ports.TokenClaims{
		Email:      "alice@example.com",
		Role:       domain.RoleAdmin,
		Department: "dept_1",
	}

	token, err := svc.Issue(in)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	out, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if *out != in {
		t.Fatalf("claims mismatch: got %+v want %+v", out, in)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Nanosecond)

	token, err := svc.Issue(ports.TokenClaims{Email: "a@x.com", Role: domain.RoleEmployee, Department: "d"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.TokenClaims{Email: "a@x.com", Role: domain.RoleAdmin, Department: "d"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// flip every byte of the signature segment in turn; none may validate
	dot := strings.LastIndex(token, ".")
	sig := []byte(token[dot+1:])
	for i := range sig {
		mutated := make([]byte, len(sig))
		copy(mutated, sig)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		tampered := token[:dot+1] + string(mutated)
		if tampered == token {
			continue
		}
		if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("byte %d: expected ErrTokenMalformed, got %v", i, err)
		}
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(ports.TokenClaims{Email: "a@x.com", Role: domain.RoleAdmin, Department: "d"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_NotYetValid(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	now := time.Now()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
		},
		Email: "a@x.com",
		Role:  domain.RoleAdmin,
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenNotYetValid) {
		t.Fatalf("expected ErrTokenNotYetValid, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}
