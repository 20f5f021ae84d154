package models

import "strings"

// User is the signed-in customer. The login is a local mock, so nothing else is known.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewUserFromEmail derives the display name from the local part of the email.
func NewUserFromEmail(email string) User {
	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	return User{Email: email, Name: name}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration form submission
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone,omitempty"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Claims represents JWT claims
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Exp   int64  `json:"exp"`
}
