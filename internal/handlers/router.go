package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/auth"
	"github.com/ukydev/premier-motors/internal/middleware"
	"github.com/ukydev/premier-motors/internal/prefs"
	"github.com/ukydev/premier-motors/internal/store"
)

// Deps are the services the router exposes.
type Deps struct {
	Auth     *auth.Service
	Plans    *store.PlanStore
	Services *store.ServiceStore
	Theme    *prefs.ThemeService
	Log      logrus.FieldLogger
	Now      store.Clock

	// RateLimitRequests per RateLimitWindow seconds per client; zero disables limiting.
	RateLimitRequests int
	RateLimitWindow   int
	// TrustProxyHeaders keys the rate limit on forwarding headers.
	TrustProxyHeaders bool
}

// NewRouter wires every route behind logging, rate limiting and authentication.
func NewRouter(d Deps) http.Handler {
	authHandler := NewAuthHandler(d.Auth, d.Log)
	catalogHandler := NewCatalogHandler()
	planHandler := NewPlanHandler(d.Plans, d.Now, d.Log)
	serviceHandler := NewServiceHandler(d.Services, d.Log)
	themeHandler := NewThemeHandler(d.Theme)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	mux.HandleFunc("GET /api/catalog/services", catalogHandler.Services)
	mux.HandleFunc("GET /api/catalog/brands", catalogHandler.Brands)
	mux.HandleFunc("GET /api/catalog/compatible", catalogHandler.Compatible)
	mux.HandleFunc("GET /api/catalog/maintenance/next", catalogHandler.NextMaintenance)

	mux.HandleFunc("GET /api/plans", planHandler.List)
	mux.HandleFunc("POST /api/plans", planHandler.Create)
	mux.HandleFunc("DELETE /api/plans", planHandler.Clear)
	mux.HandleFunc("POST /api/plans/quote", planHandler.Quote)
	mux.HandleFunc("GET /api/plans/{id}", planHandler.Get)
	mux.HandleFunc("PUT /api/plans/{id}", planHandler.Update)
	mux.HandleFunc("DELETE /api/plans/{id}", planHandler.Delete)
	mux.HandleFunc("POST /api/plans/{id}/cancel", planHandler.Cancel)
	mux.HandleFunc("POST /api/plans/{id}/payments", planHandler.Pay)

	mux.HandleFunc("GET /api/services/history", serviceHandler.History)
	mux.HandleFunc("DELETE /api/services/history", serviceHandler.ClearHistory)
	mux.HandleFunc("GET /api/services/upcoming", serviceHandler.Upcoming)
	mux.HandleFunc("POST /api/services/bookings", serviceHandler.Book)
	mux.HandleFunc("POST /api/services/upcoming/{id}/complete", serviceHandler.Complete)
	mux.HandleFunc("POST /api/services/upcoming/{id}/cancel", serviceHandler.Cancel)

	mux.HandleFunc("GET /api/theme", themeHandler.Get)
	mux.HandleFunc("POST /api/theme/toggle", themeHandler.Toggle)

	rateLimiter := middleware.NewRateLimitMiddleware()
	rateLimiter.TrustProxyHeaders = d.TrustProxyHeaders
	return middleware.Chain(mux,
		middleware.RequestLogger(d.Log),
		rateLimiter.RateLimit(d.RateLimitRequests, d.RateLimitWindow),
		middleware.NewAuthMiddleware(d.Auth).Authenticate,
	)
}

// Health reports that the bridge is up.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
