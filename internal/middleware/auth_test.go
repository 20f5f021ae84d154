package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/premier-motors/internal/auth"
	"github.com/ukydev/premier-motors/internal/models"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	authService := auth.NewService("", 0)
	middleware := NewAuthMiddleware(authService)

	// Test successful authentication
	t.Run("valid token", func(t *testing.T) {
		user := &models.User{Email: "ana@premier.com", Name: "ana"}
		token, _ := authService.GenerateToken(user)

		req := httptest.NewRequest("GET", "/api/plans", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			claims, ok := GetUserFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, user.Email, claims.Email)
			assert.Equal(t, user.Name, claims.Name)
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	// Test missing authorization header
	t.Run("missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/plans", nil)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/plans", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()

		middleware.Authenticate(http.NotFoundHandler()).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	// Test invalid token
	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/plans", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	// Test skip auth paths
	for _, path := range []string{"/api/auth/login", "/api/auth/register", "/health"} {
		t.Run("skip auth "+path, func(t *testing.T) {
			req := httptest.NewRequest("POST", path, nil)
			w := httptest.NewRecorder()

			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
			})

			middleware.Authenticate(handler).ServeHTTP(w, req)
			assert.True(t, handlerCalled)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("profile is protected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		w := httptest.NewRecorder()
		middleware.Authenticate(http.NotFoundHandler()).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	middleware := NewRateLimitMiddleware()

	t.Run("rate limit not exceeded", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/test", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		rateLimitHandler := middleware.RateLimit(5, 60)(handler)
		rateLimitHandler.ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rate limit exceeded", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/test", nil)
		req.RemoteAddr = "192.168.1.2:12345"
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})

		rateLimitHandler := middleware.RateLimit(1, 60)(handler)

		// First request should succeed
		rateLimitHandler.ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)

		// Second request should be rate limited
		w = httptest.NewRecorder()
		handlerCalled = false
		rateLimitHandler.ServeHTTP(w, req)
		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("window expires", func(t *testing.T) {
		m := NewRateLimitMiddleware()
		now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return now }
		h := m.RateLimit(1, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest("GET", "/api/test", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		now = now.Add(61 * time.Second)
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		h := NewRateLimitMiddleware().RateLimit(0, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", "/api/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.168.1.9:5555"
	assert.Equal(t, "192.168.1.9", getClientIP(req, true))

	req.Header.Set("X-Real-IP", "10.1.1.1")
	assert.Equal(t, "10.1.1.1", getClientIP(req, true))

	req.Header.Set("X-Forwarded-For", "172.16.0.1, 10.1.1.1")
	assert.Equal(t, "172.16.0.1", getClientIP(req, true))

	// Forwarding headers are ignored unless the proxy is trusted.
	assert.Equal(t, "192.168.1.9", getClientIP(req, false))

	req.RemoteAddr = "[::1]:8080"
	assert.Equal(t, "::1", getClientIP(req, false))
}

func tracked(m *RateLimitMiddleware) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func TestRateLimitMiddleware_IgnoresSpoofedForwardedFor(t *testing.T) {
	m := NewRateLimitMiddleware()
	h := m.RateLimit(2, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/api/plans", nil)
		req.RemoteAddr = "192.168.1.50:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 2, allowed)
	assert.Equal(t, 1, tracked(m))
}

func TestRateLimitMiddleware_TrustedProxy(t *testing.T) {
	m := NewRateLimitMiddleware()
	m.TrustProxyHeaders = true
	h := m.RateLimit(1, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		req := httptest.NewRequest("GET", "/api/plans", nil)
		req.RemoteAddr = "127.0.0.1:40000"
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, ip)
	}
	assert.Equal(t, 2, tracked(m))
}

func TestRateLimitMiddleware_ForgetsIdleClients(t *testing.T) {
	m := NewRateLimitMiddleware()
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	h := m.RateLimit(5, 60)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest("GET", "/api/plans", nil)
		req.RemoteAddr = fmt.Sprintf("192.168.2.%d:1234", i)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	require.Equal(t, 20, tracked(m))

	// Clients idle for a whole window are forgotten on the next request.
	now = now.Add(2 * time.Minute)
	req := httptest.NewRequest("GET", "/api/plans", nil)
	req.RemoteAddr = "192.168.3.1:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, 1, tracked(m))
}

func TestGetUserFromContext(t *testing.T) {
	claims := &models.Claims{
		Email: "ana@premier.com",
		Name:  "ana",
	}

	ctx := context.WithValue(context.Background(), UserContextKey, claims)

	retrievedClaims, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims.Email, retrievedClaims.Email)
	assert.Equal(t, claims.Name, retrievedClaims.Name)

	// Test with no user in context
	_, ok = GetUserFromContext(context.Background())
	assert.False(t, ok)
}
