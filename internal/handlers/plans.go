package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/catalog"
	"github.com/ukydev/premier-motors/internal/models"
	"github.com/ukydev/premier-motors/internal/schedule"
	"github.com/ukydev/premier-motors/internal/store"
)

// PlanHandler exposes the maintenance plan store.
type PlanHandler struct {
	plans *store.PlanStore
	now   store.Clock
	log   logrus.FieldLogger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(plans *store.PlanStore, now store.Clock, log logrus.FieldLogger) *PlanHandler {
	if now == nil {
		now = time.Now
	}
	return &PlanHandler{
		plans: plans,
		now:   now,
		log:   componentLogger(log, "plans"),
	}
}

// CreatePlanRequest is the plan form: the vehicle, its current mileage and how to pay.
type CreatePlanRequest struct {
	VehicleBrand   models.Brand         `json:"vehicle_brand"`
	VehicleModel   string               `json:"vehicle_model"`
	Year           int                  `json:"year"`
	CurrentMileage *int                 `json:"current_mileage"`
	PaymentMethod  models.PaymentMethod `json:"payment_method"`
	Frequency      string               `json:"frequency"`
}

// QuoteRequest previews a schedule for either a mileage or an explicit total.
type QuoteRequest struct {
	CurrentMileage *int   `json:"current_mileage,omitempty"`
	TotalAmount    int    `json:"total_amount,omitempty"`
	Frequency      string `json:"frequency"`
}

type quoteResponse struct {
	schedule.Quote
	MaintenanceMileage int         `json:"maintenance_mileage,omitempty"`
	DueDates           []time.Time `json:"due_dates"`
}

// List returns every plan, or only those with ?status=.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	status := models.PlanStatus(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidPlanStatus(status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	writeJSON(w, http.StatusOK, h.plans.ByStatus(status))
}

// Quote computes the schedule a plan would get without storing anything.
func (h *PlanHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	freq, err := schedule.ParseFrequency(req.Frequency)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid frequency")
		return
	}

	var resp quoteResponse
	total := req.TotalAmount
	if req.CurrentMileage != nil {
		if *req.CurrentMileage < 0 {
			writeError(w, http.StatusBadRequest, "current_mileage must not be negative")
			return
		}
		tier := catalog.NextMaintenance(*req.CurrentMileage)
		total = tier.Price
		resp.MaintenanceMileage = tier.Mileage
	}
	if total <= 0 {
		writeError(w, http.StatusBadRequest, "current_mileage or a positive total_amount is required")
		return
	}

	resp.Quote = schedule.NewQuote(total, freq, h.now())
	resp.DueDates = schedule.DueDates(freq, resp.FirstPaymentDate)
	writeJSON(w, http.StatusOK, resp)
}

// Create validates the plan form and stores a new active plan.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	freq, msg := h.validateCreate(req)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	tier := catalog.NextMaintenance(*req.CurrentMileage)
	quote := schedule.NewQuote(tier.Price, freq, h.now())
	plan := h.plans.AddPlan(models.PlanDraft{
		VehicleBrand:       req.VehicleBrand,
		VehicleModel:       req.VehicleModel,
		Year:               req.Year,
		MaintenanceMileage: tier.Mileage,
		NextPaymentDate:    quote.FirstPaymentDate,
		PaymentMethod:      req.PaymentMethod,
		Frequency:          freq,
		InstallmentAmount:  quote.InstallmentAmount,
		TotalInstallments:  quote.TotalInstallments,
		PaidInstallments:   0,
		TotalAmount:        quote.TotalAmount,
		Status:             models.PlanActive,
	})

	h.log.WithFields(logrus.Fields{
		"plan_id":   plan.ID,
		"brand":     plan.VehicleBrand,
		"model":     plan.VehicleModel,
		"frequency": plan.Frequency,
		"total":     plan.TotalAmount,
	}).Info("Plan created")
	writeJSON(w, http.StatusCreated, plan)
}

func (h *PlanHandler) validateCreate(req CreatePlanRequest) (models.PaymentFrequency, string) {
	if req.VehicleBrand == "" || req.VehicleModel == "" || req.Year == 0 ||
		req.CurrentMileage == nil || req.PaymentMethod == "" || req.Frequency == "" {
		return "", "All fields are required"
	}
	known := catalog.ModelsFor(req.VehicleBrand)
	if known == nil {
		return "", "Unknown vehicle brand"
	}
	if !containsString(known, req.VehicleModel) {
		return "", "Unknown vehicle model"
	}
	if req.Year < 1900 || req.Year > h.now().Year()+1 {
		return "", "Invalid year"
	}
	if *req.CurrentMileage < 0 {
		return "", "current_mileage must not be negative"
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return "", "Invalid payment method"
	}
	freq, err := schedule.ParseFrequency(req.Frequency)
	if err != nil {
		return "", "Invalid frequency"
	}
	return freq, ""
}

// Get returns one plan.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plans.Plan(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Update replaces a plan. The id comes from the path; created_at is kept when omitted.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok := h.plans.Plan(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}

	var plan models.MaintenancePlan
	if err := decodeJSON(r, &plan); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	plan.ID = id
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = existing.CreatedAt
	}

	freq, err := schedule.ParseFrequency(string(plan.Frequency))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid frequency")
		return
	}
	plan.Frequency = freq
	switch {
	case !models.IsValidPaymentMethod(plan.PaymentMethod):
		writeError(w, http.StatusBadRequest, "Invalid payment method")
		return
	case !models.IsValidPlanStatus(plan.Status):
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	case plan.PaidInstallments < 0 || plan.PaidInstallments > plan.TotalInstallments:
		writeError(w, http.StatusBadRequest, "paid_installments must be between 0 and total_installments")
		return
	case plan.Status == models.PlanCompleted && plan.PaidInstallments != plan.TotalInstallments:
		writeError(w, http.StatusBadRequest, "A completed plan must have every installment paid")
		return
	case plan.Status == models.PlanActive && plan.PaidInstallments == plan.TotalInstallments:
		writeError(w, http.StatusBadRequest, "A fully paid plan must be completed")
		return
	}

	if !h.plans.UpdatePlan(plan) {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Cancel cancels a plan.
func (h *PlanHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plans.CancelPlan(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}
	h.log.WithField("plan_id", plan.ID).Info("Plan cancelled")
	writeJSON(w, http.StatusOK, plan)
}

// Pay records one installment and returns the plan as it now stands.
func (h *PlanHandler) Pay(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plans.MarkPayment(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}
	h.log.WithFields(logrus.Fields{
		"plan_id": plan.ID,
		"paid":    plan.PaidInstallments,
		"total":   plan.TotalInstallments,
		"status":  plan.Status,
	}).Info("Payment recorded")
	writeJSON(w, http.StatusOK, plan)
}

// Delete removes a plan.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.plans.DeletePlan(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "Plan not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes every plan.
func (h *PlanHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.plans.ClearPlans()
	h.log.Info("All plans cleared")
	w.WriteHeader(http.StatusNoContent)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
