package handlers

import (
	"net/http"

	"github.com/ukydev/premier-motors/internal/models"
	"github.com/ukydev/premier-motors/internal/prefs"
)

// ThemeHandler reads and toggles the color theme.
type ThemeHandler struct {
	theme *prefs.ThemeService
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(theme *prefs.ThemeService) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

type themeResponse struct {
	Theme  models.Theme `json:"theme"`
	IsDark bool         `json:"is_dark"`
}

func newThemeResponse(t models.Theme) themeResponse {
	return themeResponse{Theme: t, IsDark: t == models.ThemeDark}
}

// Get returns the current theme.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newThemeResponse(h.theme.Current()))
}

// Toggle flips the theme. Persistence failures do not fail the request.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newThemeResponse(h.theme.Toggle(r.Context())))
}
