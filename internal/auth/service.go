package auth

import (
	"fmt"
	"strconv"
	"time"

	apperrors "channel-relay/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "channel-relay"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               int64 `json:"user_id" example:"12345"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenResponse is a minted admin API token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthService mints and validates admin API tokens for platform users
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateJWT creates a JWT token for the platform user
func (s *AuthService) GenerateJWT(userID int64) (*TokenResponse, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user_id", "must be non-zero")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("failed to parse token: %v", err))
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}

	return nil, apperrors.NewAuthenticationError("invalid token")
}
