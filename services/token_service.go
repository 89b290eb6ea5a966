package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kartify-commerce/kartify-backend/constants"
	"github.com/kartify-commerce/kartify-backend/models"
)

// UserClaims is the JWT payload for every platform token.
type UserClaims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies platform-scoped JWTs. Each platform
// has its own signing secret, so a token issued for one platform fails
// verification on any other.
type TokenService struct {
	secrets map[constants.Platform]string
	ttl     time.Duration
	now     func() time.Time
}

// NewTokenService builds a token service with one secret per platform.
func NewTokenService(adminSecret, deviceSecret, clientSecret string, ttl time.Duration) (*TokenService, error) {
	secrets := map[constants.Platform]string{
		constants.PlatformAdmin:  adminSecret,
		constants.PlatformDevice: deviceSecret,
		constants.PlatformClient: clientSecret,
	}
	for p, s := range secrets {
		if s == "" {
			return nil, fmt.Errorf("empty JWT secret for %s platform", p)
		}
	}
	return &TokenService{secrets: secrets, ttl: ttl, now: time.Now}, nil
}

// TTL returns the configured token lifetime.
func (t *TokenService) TTL() time.Duration { return t.ttl }

// Generate mints a signed token for the user on the given platform.
func (t *TokenService) Generate(user *models.User, platform constants.Platform) (string, error) {
	secret, ok := t.secrets[platform]
	if !ok {
		return "", fmt.Errorf("no signing secret for platform %d", platform)
	}
	now := t.now()
	claims := UserClaims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "kartify-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses tokenString under the platform's secret and returns
// its claims. Expired, malformed, and cross-platform tokens all fail.
func (t *TokenService) Verify(tokenString string, platform constants.Platform) (*UserClaims, error) {
	secret, ok := t.secrets[platform]
	if !ok {
		return nil, fmt.Errorf("no signing secret for platform %d", platform)
	}
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
