package handlers

import (
	"net/http"

	"github.com/ukydev/premier-motors/internal/catalog"
	"github.com/ukydev/premier-motors/internal/models"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Services lists catalog services filtered by category, brand and search text.
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, catalog.Filter(q.Get("category"), q.Get("brand"), q.Get("q")))
}

// Brands lists brands with their models.
func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Brands())
}

// Compatible lists the services of a category available for one vehicle.
func (h *CatalogHandler) Compatible(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	brand := models.Brand(q.Get("brand"))
	model := q.Get("model")
	category := models.Category(q.Get("category"))
	if brand == "" || model == "" || category == "" {
		writeError(w, http.StatusBadRequest, "brand, model and category are required")
		return
	}
	writeJSON(w, http.StatusOK, catalog.Compatible(brand, model, category))
}

type nextMaintenanceResponse struct {
	CurrentMileage int `json:"current_mileage"`
	Mileage        int `json:"maintenance_mileage"`
	Price          int `json:"price"`
}

// NextMaintenance returns the prepaid maintenance tier that follows a mileage.
func (h *CatalogHandler) NextMaintenance(w http.ResponseWriter, r *http.Request) {
	mileage, err := queryInt(r, "mileage", -1)
	if err != nil || mileage < 0 {
		writeError(w, http.StatusBadRequest, "mileage must be a non-negative number")
		return
	}
	tier := catalog.NextMaintenance(mileage)
	writeJSON(w, http.StatusOK, nextMaintenanceResponse{
		CurrentMileage: mileage,
		Mileage:        tier.Mileage,
		Price:          tier.Price,
	})
}
