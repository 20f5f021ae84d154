package models

import "time"

// Category groups catalog services.
type Category string

const (
	CategoryPaint       Category = "paint"
	CategoryMechanical  Category = "mechanical"
	CategoryMaintenance Category = "maintenance"
	CategoryAccessories Category = "accessories"
)

// Service is an immutable catalog entry.
type Service struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Category            Category `json:"category"`
	Description         string   `json:"description"`
	Price               int      `json:"price"`
	Duration            int      `json:"duration"` // in minutes
	CompatibleBrands    []Brand  `json:"compatible_brands"`
	CompatibleModels    []string `json:"compatible_models,omitempty"`
	RequiresMileage     bool     `json:"requires_mileage,omitempty"`
	RecommendedInterval int      `json:"recommended_interval,omitempty"` // in kilometers
}

// Clone returns a deep copy so bookings never share slices with the catalog.
func (s Service) Clone() Service {
	out := s
	if s.CompatibleBrands != nil {
		out.CompatibleBrands = append([]Brand(nil), s.CompatibleBrands...)
	}
	if s.CompatibleModels != nil {
		out.CompatibleModels = append([]string(nil), s.CompatibleModels...)
	}
	return out
}

// SupportsBrand reports whether the service can be performed on the brand.
func (s Service) SupportsBrand(b Brand) bool {
	for _, cb := range s.CompatibleBrands {
		if cb == b {
			return true
		}
	}
	return false
}

// RecordStatus is the state of a booking.
type RecordStatus string

const (
	RecordCompleted RecordStatus = "completed"
	RecordPending   RecordStatus = "pending"
	RecordCancelled RecordStatus = "cancelled"
)

// PaymentPlanInfo is an optional payment snapshot attached to a booking.
type PaymentPlanInfo struct {
	Method            PaymentMethod    `json:"method"`
	Frequency         PaymentFrequency `json:"frequency"`
	Installments      int              `json:"installments"`
	TotalInstallments int              `json:"total_installments"`
}

// ServiceRecord is a booked service, pending in upcoming or completed in history.
type ServiceRecord struct {
	ID          string           `json:"id"`
	Service     Service          `json:"service"`
	Date        time.Time        `json:"date"`
	VehicleInfo VehicleInfo      `json:"vehicle_info"`
	Status      RecordStatus     `json:"status"`
	Total       int              `json:"total"`
	PaymentPlan *PaymentPlanInfo `json:"payment_plan,omitempty"`
}

// Clone returns a copy that shares no mutable state with r.
func (r ServiceRecord) Clone() ServiceRecord {
	out := r
	out.Service = r.Service.Clone()
	if r.VehicleInfo.Mileage != nil {
		m := *r.VehicleInfo.Mileage
		out.VehicleInfo.Mileage = &m
	}
	if r.PaymentPlan != nil {
		p := *r.PaymentPlan
		out.PaymentPlan = &p
	}
	return out
}
