package prefs

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/models"
)

// ThemeKey is the storage key of the theme preference.
const ThemeKey = "premier-motors-theme"

// ThemeService holds the current theme and persists changes. Storage errors
// are logged and never surface to callers.
type ThemeService struct {
	store  Store
	system models.Theme
	log    logrus.FieldLogger

	mu      sync.RWMutex
	current models.Theme

	// persistMu orders writes so the stored value always matches current.
	persistMu sync.Mutex
}

// NewThemeService starts in light mode until Load runs. system is the device
// color scheme; anything other than dark counts as light.
func NewThemeService(store Store, system models.Theme, log logrus.FieldLogger) *ThemeService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ThemeService{
		store:   store,
		system:  system,
		log:     log.WithField("component", "theme"),
		current: models.ThemeLight,
	}
}

// Load reads the stored theme, falling back to the system scheme.
func (s *ThemeService) Load(ctx context.Context) models.Theme {
	theme := s.fallback()
	stored, ok, err := s.store.Get(ctx, ThemeKey)
	switch {
	case err != nil:
		s.log.WithError(err).Warn("Failed to load theme, using default")
	case ok && models.IsValidTheme(models.Theme(stored)):
		theme = models.Theme(stored)
	}

	s.mu.Lock()
	s.current = theme
	s.mu.Unlock()
	return theme
}

// Current returns the theme in use.
func (s *ThemeService) Current() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle flips between light and dark and saves the result.
func (s *ThemeService) Toggle(ctx context.Context) models.Theme {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.current = s.current.Toggle()
	theme := s.current
	s.mu.Unlock()

	if err := s.store.Set(ctx, ThemeKey, string(theme)); err != nil {
		s.log.WithError(err).WithField("theme", theme).Warn("Failed to save theme")
	}
	return theme
}

func (s *ThemeService) fallback() models.Theme {
	if s.system == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}
