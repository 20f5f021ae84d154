package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/auth"
	"github.com/ukydev/premier-motors/internal/config"
	"github.com/ukydev/premier-motors/internal/db"
	"github.com/ukydev/premier-motors/internal/handlers"
	"github.com/ukydev/premier-motors/internal/models"
	"github.com/ukydev/premier-motors/internal/prefs"
	"github.com/ukydev/premier-motors/internal/store"
)

// newPrefsStore picks the preference backend: MongoDB when a URI is set,
// otherwise a JSON file. A Mongo connection failure falls back to the file.
// The returned func releases the backend.
func newPrefsStore(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (prefs.Store, func()) {
	fileStore := prefs.NewFileStore(cfg.PrefsFile)
	if cfg.MongoURI == "" {
		log.WithField("file", cfg.PrefsFile).Info("Using file preference store")
		return fileStore, func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := db.ConnectMongo(connectCtx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).WithField("file", cfg.PrefsFile).Warn("MongoDB unavailable, using file preference store")
		return fileStore, func() {}
	}

	log.WithField("database", cfg.MongoDB).Info("Using MongoDB preference store")
	return db.NewMongoPreferences(client, cfg.MongoDB), func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect MongoDB")
		}
	}
}

// newServer builds the stores and the HTTP bridge in front of them.
func newServer(ctx context.Context, cfg config.Config, log *logrus.Logger, prefStore prefs.Store) *http.Server {
	var seed []models.MaintenancePlan
	if cfg.SeedDemo {
		seed = append(seed, store.DemoPlan(time.Now()))
	}

	theme := prefs.NewThemeService(prefStore, cfg.SystemTheme, log)
	log.WithField("theme", theme.Load(ctx)).Info("Theme loaded")

	handler := handlers.NewRouter(handlers.Deps{
		Auth:              auth.NewService(cfg.JWTSecret, cfg.JWTExpiry),
		Plans:             store.NewPlanStore(time.Now, seed...),
		Services:          store.NewServiceStore(time.Now),
		Theme:             theme,
		Log:               log,
		Now:               time.Now,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prefStore, closePrefs := newPrefsStore(ctx, cfg, log)
	defer closePrefs()

	srv := newServer(ctx, cfg, log, prefStore)

	go func() {
		log.WithField("addr", srv.Addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
