package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the only role a session token can carry.
const AdminRole = "admin"

// AuthService is the admin session gate. It checks attempts against the single
// configured credential pair and issues signed, expiring session tokens.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

// NewAuthService creates the gate from the configured credential pair. The
// password is kept only as a bcrypt hash.
func NewAuthService(username, password, jwtSecret string, tokenTTL time.Duration) (*AuthService, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("admin credentials must not be empty")
	}
	if jwtSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthService{
		username:     username,
		passwordHash: hash,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}, nil
}

// CheckCredentials reports whether the attempt matches the configured pair.
func (s *AuthService) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// Login authenticates the admin and returns a session token with its expiry.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	if !s.CheckCredentials(username, password) {
		return "", time.Time{}, fmt.Errorf("%w: invalid credentials", models.ErrAuthentication)
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  s.username,
		"role": AdminRole,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateToken parses a session token and returns its claims. Every failure
// wraps models.ErrAuthentication.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %v", models.ErrAuthentication, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", models.ErrAuthentication)
	}
	if claims["role"] != AdminRole || claims["sub"] != s.username {
		return nil, fmt.Errorf("%w: token does not grant admin access", models.ErrAuthentication)
	}
	return claims, nil
}
