package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"plateforge/internal/config"
	"plateforge/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService issues and checks the bearer tokens that gate the admin API.
// There is a single admin account configured through the environment; the
// catalog and order admin surface was previously wide open.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (string, error)
	Verify(tokenString string) error
}

type authServiceImpl struct {
	cfg config.Admin
}

func NewAuthService(cfg config.Admin) AuthService {
	return &authServiceImpl{
		cfg: cfg,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Password)) == 1
	if !userOK || !passOK {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "plateforge",
		Subject:   req.Username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.TokenTTLHrs) * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}

	return signed, nil
}

func (s *authServiceImpl) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	return nil
}
