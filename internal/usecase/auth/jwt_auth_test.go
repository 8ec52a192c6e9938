package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

var testSecret = strings.Repeat("x", 32)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	uc := NewTokenUseCase(testSecret)
	userID := uuid.New()

	token, expiresAt, err := uc.IssueToken(userID, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected expiry in the future")
	}

	got, err := uc.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %s, got %s", userID, got)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	t.Parallel()

	uc := NewTokenUseCase(testSecret)
	userID := uuid.New()

	expired, _, _ := uc.IssueToken(userID, -time.Minute)
	foreign, _, _ := NewTokenUseCase(strings.Repeat("y", 32)).IssueToken(userID, time.Hour)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
	}).SignedString([]byte(testSecret))

	badID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"expired":        expired,
		"wrong secret":   foreign,
		"missing expiry": noExp,
		"non uuid user":  badID,
		"alg none":       none,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := uc.VerifyToken(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestVerifyTokenSubjectFallback(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))

	got, err := NewTokenUseCase(testSecret).VerifyToken(context.Background(), token)
	if err != nil || got != userID {
		t.Fatalf("expected subject %s, got %s (%v)", userID, got, err)
	}
}
