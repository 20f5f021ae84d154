// Package catalog holds the shop's static reference data: services, vehicle
// brands with their models, and the prepaid maintenance tiers. Everything
// returned is a copy; callers cannot mutate the catalog.
package catalog

import (
	"errors"
	"strings"

	"github.com/ukydev/premier-motors/internal/models"
)

var ErrServiceNotFound = errors.New("service not found")

// All matches any category or brand in Filter.
const All = "all"

// BrandModels pairs a brand with the models the shop services.
type BrandModels struct {
	Brand  models.Brand `json:"brand"`
	Models []string     `json:"models"`
}

// Services returns every catalog service in catalog order.
func Services() []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		out = append(out, s.Clone())
	}
	return out
}

// Lookup finds a service by id.
func Lookup(id string) (models.Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return models.Service{}, ErrServiceNotFound
}

// Brands returns each brand with its models.
func Brands() []BrandModels {
	out := make([]BrandModels, 0, len(brandOrder))
	for _, b := range brandOrder {
		out = append(out, BrandModels{Brand: b, Models: ModelsFor(b)})
	}
	return out
}

// ModelsFor returns the models of a brand, or nil for an unknown brand.
func ModelsFor(b models.Brand) []string {
	m, ok := vehicleModels[b]
	if !ok {
		return nil
	}
	return append([]string(nil), m...)
}

// Filter narrows the catalog by category, brand and a free-text query.
// Empty or "all" category/brand match anything; the query is matched
// case-insensitively against name and description.
func Filter(category, brand, query string) []models.Service {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Service{}
	for _, s := range services {
		if category != "" && category != All && string(s.Category) != category {
			continue
		}
		if brand != "" && brand != All && !s.SupportsBrand(models.Brand(brand)) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// Compatible lists the services of a category that can be done on a specific vehicle.
// Services that name compatible models only match those models.
func Compatible(brand models.Brand, model string, category models.Category) []models.Service {
	out := []models.Service{}
	for _, s := range services {
		if s.Category != category || !s.SupportsBrand(brand) {
			continue
		}
		if len(s.CompatibleModels) > 0 && !contains(s.CompatibleModels, model) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// MaintenanceTiers returns the prepaid maintenance packages.
func MaintenanceTiers() []MaintenanceTier {
	return append([]MaintenanceTier(nil), maintenanceTiers...)
}

// NextMaintenance picks the first tier above the current mileage. Past the
// last tier the cycle starts over at the first one.
func NextMaintenance(mileage int) MaintenanceTier {
	for _, t := range maintenanceTiers {
		if t.Mileage > mileage {
			return t
		}
	}
	return maintenanceTiers[0]
}

// NextMileage rounds mileage up to the next multiple of interval.
func NextMileage(mileage, interval int) int {
	if interval <= 0 {
		return mileage
	}
	if mileage <= 0 {
		return 0
	}
	return (mileage + interval - 1) / interval * interval
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
