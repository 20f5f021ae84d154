package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/catalog"
	"github.com/ukydev/premier-motors/internal/models"
	"github.com/ukydev/premier-motors/internal/schedule"
	"github.com/ukydev/premier-motors/internal/store"
)

// ServiceHandler exposes bookings and service history.
type ServiceHandler struct {
	services *store.ServiceStore
	log      logrus.FieldLogger
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(services *store.ServiceStore, log logrus.FieldLogger) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		log:      componentLogger(log, "services"),
	}
}

// BookingRequest books a catalog service for a vehicle.
type BookingRequest struct {
	ServiceID   string                  `json:"service_id"`
	VehicleInfo models.VehicleInfo      `json:"vehicle_info"`
	PaymentPlan *models.PaymentPlanInfo `json:"payment_plan,omitempty"`
}

// History returns completed services, newest first. ?limit=n keeps the latest n.
func (h *ServiceHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", -1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit must be a number")
		return
	}
	if limit >= 0 {
		writeJSON(w, http.StatusOK, h.services.Recent(limit))
		return
	}
	writeJSON(w, http.StatusOK, h.services.History())
}

// Upcoming returns pending bookings.
func (h *ServiceHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.services.Upcoming())
}

// Book creates a pending booking from a catalog service.
func (h *ServiceHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	svc, err := catalog.Lookup(req.ServiceID)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		writeError(w, http.StatusBadRequest, "Unknown service")
		return
	}

	v := req.VehicleInfo
	switch {
	case v.Brand == "" || v.Model == "" || v.Year == 0:
		writeError(w, http.StatusBadRequest, "Vehicle brand, model and year are required")
		return
	case !models.IsValidBrand(v.Brand):
		writeError(w, http.StatusBadRequest, "Unknown vehicle brand")
		return
	case !svc.SupportsBrand(v.Brand):
		writeError(w, http.StatusBadRequest, "Service is not available for this brand")
		return
	case svc.RequiresMileage && v.Mileage == nil:
		writeError(w, http.StatusBadRequest, "Current mileage is required for this service")
		return
	case v.Mileage != nil && *v.Mileage < 0:
		writeError(w, http.StatusBadRequest, "Mileage must not be negative")
		return
	}

	if p := req.PaymentPlan; p != nil {
		freq, err := schedule.ParseFrequency(string(p.Frequency))
		if err != nil || !models.IsValidPaymentMethod(p.Method) {
			writeError(w, http.StatusBadRequest, "Invalid payment plan")
			return
		}
		p.Frequency = freq
	}

	rec := h.services.NewBooking(svc, v, req.PaymentPlan)
	h.services.AddUpcoming(rec)

	h.log.WithFields(logrus.Fields{
		"record_id":  rec.ID,
		"service_id": svc.ID,
		"brand":      v.Brand,
		"model":      v.Model,
	}).Info("Service booked")
	writeJSON(w, http.StatusCreated, rec)
}

// Complete moves a pending booking into history.
func (h *ServiceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.services.CompleteService(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	h.log.WithField("record_id", rec.ID).Info("Service completed")
	writeJSON(w, http.StatusOK, rec)
}

// Cancel drops a pending booking.
func (h *ServiceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if !h.services.CancelService(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearHistory empties the service history.
func (h *ServiceHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.services.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}
