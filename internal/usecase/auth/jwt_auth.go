package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// TokenUseCase verifies bearer tokens issued by the identity service. The
// user id is read from the "user_id" claim, falling back to "sub".
type TokenUseCase struct {
	jwtSecret []byte
	now       func() time.Time
}

func NewTokenUseCase(jwtSecret string) *TokenUseCase {
	return &TokenUseCase{jwtSecret: []byte(jwtSecret), now: time.Now}
}

// IssueToken signs an HS256 token for userID; used by tooling and tests
func (uc *TokenUseCase) IssueToken(userID uuid.UUID, ttl time.Duration) (string, time.Time, error) {
	now := uc.now()
	expiresAt := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"sub":     userID.String(),
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
	})

	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyToken verifies JWT token and returns user ID
func (uc *TokenUseCase) VerifyToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return uuid.Nil, domain.ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	}, jwt.WithTimeFunc(uc.now), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}

	raw, _ := claims["user_id"].(string)
	if raw == "" {
		sub, err := claims.GetSubject()
		if err != nil {
			return uuid.Nil, domain.ErrInvalidToken
		}
		raw = sub
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errors.Join(domain.ErrInvalidToken, err)
	}
	return userID, nil
}
