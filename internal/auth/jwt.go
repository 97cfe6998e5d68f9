// Package auth provides password hashing and JWT token management.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token classes. Access tokens authorize API calls; refresh tokens are only
// usable to mint new access tokens.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")

	// ErrNotAccessToken is returned when a refresh token is presented to an
	// endpoint that requires an access token, and vice versa for
	// ErrNotRefreshToken. Both map to 422 at the API boundary, distinct
	// from the 401 returned for malformed or expired tokens.
	ErrNotAccessToken  = errors.New("Only access tokens are allowed")
	ErrNotRefreshToken = errors.New("Only refresh tokens are allowed")
)

// Claims are the JWT claims carried by both token classes. The subject is
// the user id, TokenType distinguishes access from refresh tokens.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric subject %q", ErrInvalidToken, c.Subject)
	}
	return id, nil
}

// JWTManager issues and validates HS256-signed access and refresh tokens.
type JWTManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTManager creates a token manager. secretKey should be a strong random
// string; accessTTL and refreshTTL control how long each token class remains
// valid (e.g. 5 minutes and 1 hour).
func NewJWTManager(secretKey string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccess creates a short-lived access token for the given user.
func (m *JWTManager) GenerateAccess(userID int64) (string, error) {
	return m.generate(userID, TokenTypeAccess, m.accessTTL)
}

// GenerateRefresh creates a refresh token for the given user.
func (m *JWTManager) GenerateRefresh(userID int64) (string, error) {
	return m.generate(userID, TokenTypeRefresh, m.refreshTTL)
}

func (m *JWTManager) generate(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and validates a signed token, returning its claims.
// It does not check the token class; callers decide which class they accept.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
