package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// CookieConfig defines console session cookie settings
type CookieConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// CookieService signs and verifies the console's own session cookie. The
// cookie only names a server-side session and grants nothing by itself;
// every protected navigation still re-resolves against the API.
type CookieService struct {
	config CookieConfig
}

// NewCookieService creates a new CookieService
func NewCookieService(config CookieConfig) *CookieService {
	return &CookieService{config: config}
}

// Claims defines the session cookie content
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issue creates a signed cookie value naming the given session.
func (s *CookieService) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// Verify validates a cookie value and returns the session ID it names.
func (s *CookieService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
