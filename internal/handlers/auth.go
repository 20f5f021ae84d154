package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/auth"
	"github.com/ukydev/premier-motors/internal/middleware"
	"github.com/ukydev/premier-motors/internal/models"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *auth.Service
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         componentLogger(log, "auth"),
	}
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if err := decodeJSON(r, &loginReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.authService.Login(loginReq.Email, loginReq.Password)
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	case err != nil:
		h.log.WithField("email", loginReq.Email).Info("Rejected login")
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		h.log.WithError(err).Error("Failed to generate token")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.log.WithField("email", user.Email).Info("User logged in")
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

// Register validates the registration form. Accounts are not stored.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.authService.ValidateRegistration(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Account created",
		"email":   req.Email,
	})
}

// Me returns the user behind the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, models.User{Email: claims.Email, Name: claims.Name})
}

func componentLogger(log logrus.FieldLogger, component string) logrus.FieldLogger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("component", component)
}
