package services

import (
	"fmt"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
)

type tokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string, expiry time.Duration, issuer string) portssvc.TokenSvcFacade {
	return &tokenService{secret: []byte(secret), expiry: expiry, issuer: issuer}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateToken issues a signed bearer token carrying the tenant identity
// and license expiry so downstream middleware can gate requests without a
// user lookup.
func (s *tokenService) GenerateToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := middleware.LicenseClaims{
		TenantID:         user.TenantID,
		LicenseExpiresAt: user.LicenseExpiresAt.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
