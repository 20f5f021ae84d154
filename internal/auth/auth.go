package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ukydev/premier-motors/internal/models"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// MinPasswordLength is the shortest password the login form accepts.
const MinPasswordLength = 6

// Service handles the local mock login and session tokens. There is no user
// database: any well-formed email/password pair signs in.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
	now       func() time.Time
}

// NewService creates a new authentication service
func NewService(secret string, exp time.Duration) *Service {
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}
	if exp <= 0 {
		exp = 24 * time.Hour
	}
	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  exp,
		now:       time.Now,
	}
}

// Login accepts an email ending in ".com" with a password of at least six characters.
func (s *Service) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !strings.HasSuffix(email, ".com") || len(password) < MinPasswordLength {
		return nil, ErrInvalidCredentials
	}
	user := models.NewUserFromEmail(email)
	return &user, nil
}

// ValidateRegistration checks a registration form. Nothing is stored on success.
func (s *Service) ValidateRegistration(req models.RegisterRequest) error {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" || strings.TrimSpace(req.ConfirmPassword) == "" {
		return ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := s.ValidatePassword(req.Password); err != nil {
		return err
	}
	return s.ValidateEmail(req.Email)
}

// GenerateToken generates a JWT token for a user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"exp":   now.Add(s.tokenExp).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT token and returns the claims
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	// Remove "Bearer " prefix if present
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
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

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	name, ok := claims["name"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		Email: email,
		Name:  name,
		Exp:   int64(exp),
	}, nil
}

// ExtractTokenFromHeader extracts token from Authorization header
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

// ValidatePassword validates password length
func (s *Service) ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateEmail validates email format
func (s *Service) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}
	return nil
}
