package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid password")
	ErrTokenGeneration      = errors.New("failed to generate session token")
	ErrInvalidSession       = errors.New("invalid or expired session")
)

// AuthService gates the admin area behind a single shared password and hands
// out signed session tokens carried in a cookie.
//
// The shared-password model is a documented limitation of this app; there are
// no user accounts.
type AuthService interface {
	Login(password string) (token string, err error)
	ValidateSession(token string) error
	SessionTTL() time.Duration
}

type authService struct {
	adminPassword string
	sessionSecret []byte
	sessionTTL    time.Duration
}

// sessionClaims is the payload of the admin session token.
type sessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new instance of authService.
func NewAuthService(adminPassword, sessionSecret string, sessionTTL time.Duration) AuthService {
	if sessionSecret == "" {
		panic("session secret cannot be empty") // Critical configuration
	}
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &authService{
		adminPassword: adminPassword,
		sessionSecret: []byte(sessionSecret),
		sessionTTL:    sessionTTL,
	}
}

// Login checks the shared admin password and issues a session token. The
// configured credential may be a bcrypt hash instead of the plain password;
// plain comparison is constant-time either way.
func (s *authService) Login(password string) (string, error) {
	if !s.passwordMatches(password) {
		return "", ErrAuthenticationFailed
	}

	now := time.Now()
	claims := sessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

func (s *authService) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminPassword, "$2a$") ||
		strings.HasPrefix(s.adminPassword, "$2b$") ||
		strings.HasPrefix(s.adminPassword, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}

// ValidateSession checks a session token taken from the cookie.
func (s *authService) ValidateSession(tokenString string) error {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil || !token.Valid || !claims.Admin {
		return ErrInvalidSession
	}
	return nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}
