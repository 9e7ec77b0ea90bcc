// Package session issues and validates the signed tokens that carry the
// simulated access role. There is no credential check: role switching is a
// local simulation, and the token is simply the explicit session value handed
// to the permission middleware instead of a process-wide mutable role.
package session

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargohondaadm-droid/CONTROLE-DE-FROTA/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the decoded content of a session token.
type Claims struct {
	Role        string              `json:"role"`
	RoleName    string              `json:"role_name"`
	Permissions []models.Permission `json:"permissions"`
	Exp         int64               `json:"exp"`
}

// HasPermission checks if the session grants a specific permission.
func (c *Claims) HasPermission(p models.Permission) bool {
	for _, have := range c.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// Service signs and validates session tokens.
type Service struct {
	secret   []byte
	tokenExp time.Duration
}

// NewService creates a session service configured from the environment.
func NewService() (*Service, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	expStr := os.Getenv("SESSION_EXPIRY")
	exp := 24 * time.Hour // default 24 hours
	if expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	return &Service{
		secret:   []byte(secret),
		tokenExp: exp,
	}, nil
}

// Issue generates a session token for the given access group.
func (s *Service) Issue(group *models.AccessGroup) (string, error) {
	perms := make([]string, len(group.Permissions))
	for i, p := range group.Permissions {
		perms[i] = string(p)
	}

	claims := jwt.MapClaims{
		"role":        group.ID,
		"role_name":   group.Name,
		"permissions": perms,
		"exp":         time.Now().Add(s.tokenExp).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a session token and returns its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	roleName, _ := claims["role_name"].(string)

	rawPerms, ok := claims["permissions"].([]interface{})
	if !ok {
		return nil, ErrInvalidToken
	}
	perms := make([]models.Permission, 0, len(rawPerms))
	for _, raw := range rawPerms {
		p, ok := raw.(string)
		if !ok {
			return nil, ErrInvalidToken
		}
		perms = append(perms, models.Permission(p))
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Role:        role,
		RoleName:    roleName,
		Permissions: perms,
		Exp:         int64(exp),
	}, nil
}

// ExtractTokenFromHeader extracts the token from an Authorization header.
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// HashPassword hashes a collaborator password using bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword checks if a password matches a hash.
func (s *Service) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
