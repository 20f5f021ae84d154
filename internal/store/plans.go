package store

import (
	"sync"
	"time"

	"github.com/ukydev/premier-motors/internal/models"
	"github.com/ukydev/premier-motors/internal/schedule"
)

// PlanStore keeps maintenance plans, most recently added first.
type PlanStore struct {
	mu    sync.RWMutex
	plans []models.MaintenancePlan
	now   Clock
	newID func() string
}

// NewPlanStore creates a plan store. seed plans keep their order.
func NewPlanStore(now Clock, seed ...models.MaintenancePlan) *PlanStore {
	plans := make([]models.MaintenancePlan, 0, len(seed))
	plans = append(plans, seed...)
	return &PlanStore{
		plans: plans,
		now:   clockOrNow(now),
		newID: newID,
	}
}

// AddPlan stamps the draft with an id and creation time and puts it first.
// Drafts are not validated here; callers build them from the schedule package.
func (s *PlanStore) AddPlan(draft models.PlanDraft) models.MaintenancePlan {
	plan := models.MaintenancePlan{
		ID:                 s.newID(),
		VehicleBrand:       draft.VehicleBrand,
		VehicleModel:       draft.VehicleModel,
		Year:               draft.Year,
		MaintenanceMileage: draft.MaintenanceMileage,
		NextPaymentDate:    draft.NextPaymentDate,
		PaymentMethod:      draft.PaymentMethod,
		Frequency:          draft.Frequency,
		InstallmentAmount:  draft.InstallmentAmount,
		TotalInstallments:  draft.TotalInstallments,
		PaidInstallments:   draft.PaidInstallments,
		TotalAmount:        draft.TotalAmount,
		Status:             draft.Status,
		CreatedAt:          s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = append([]models.MaintenancePlan{plan}, s.plans...)
	return plan
}

// CancelPlan sets the plan to cancelled whatever its current status,
// including completed plans.
func (s *PlanStore) CancelPlan(id string) (models.MaintenancePlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.MaintenancePlan{}, false
	}
	s.plans[i].Status = models.PlanCancelled
	return s.plans[i], true
}

// MarkPayment records one installment. The due date advances one step from
// the previous due date, not from now. Paying the last installment completes
// the plan. Plans that are fully paid or no longer active are left untouched.
func (s *PlanStore) MarkPayment(id string) (models.MaintenancePlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.MaintenancePlan{}, false
	}
	p := &s.plans[i]
	if p.Status != models.PlanActive || p.PaidInstallments >= p.TotalInstallments {
		return *p, true
	}
	p.PaidInstallments++
	p.NextPaymentDate = schedule.NextPaymentDate(p.Frequency, p.NextPaymentDate)
	if p.PaidInstallments >= p.TotalInstallments {
		p.Status = models.PlanCompleted
	}
	return *p, true
}

// DeletePlan removes the plan with id, whatever its status.
func (s *PlanStore) DeletePlan(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.plans = append(s.plans[:i:i], s.plans[i+1:]...)
	return true
}

// UpdatePlan replaces the stored plan that has the same id, in place.
func (s *PlanStore) UpdatePlan(plan models.MaintenancePlan) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(plan.ID)
	if i < 0 {
		return false
	}
	s.plans[i] = plan
	return true
}

// ClearPlans empties the store.
func (s *PlanStore) ClearPlans() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = []models.MaintenancePlan{}
}

// Plan returns a copy of one plan.
func (s *PlanStore) Plan(id string) (models.MaintenancePlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.MaintenancePlan{}, false
	}
	return s.plans[i], true
}

// Plans returns every plan, newest first.
func (s *PlanStore) Plans() []models.MaintenancePlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MaintenancePlan{}, s.plans...)
}

// ActivePlans is computed on every call.
func (s *PlanStore) ActivePlans() []models.MaintenancePlan {
	return s.withStatus(models.PlanActive)
}

func (s *PlanStore) CompletedPlans() []models.MaintenancePlan {
	return s.withStatus(models.PlanCompleted)
}

func (s *PlanStore) CancelledPlans() []models.MaintenancePlan {
	return s.withStatus(models.PlanCancelled)
}

// ByStatus returns the plans in one status, or all plans for an empty status.
func (s *PlanStore) ByStatus(status models.PlanStatus) []models.MaintenancePlan {
	if status == "" {
		return s.Plans()
	}
	return s.withStatus(status)
}

func (s *PlanStore) withStatus(status models.PlanStatus) []models.MaintenancePlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.MaintenancePlan{}
	for _, p := range s.plans {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// indexOf must be called with the lock held.
func (s *PlanStore) indexOf(id string) int {
	for i := range s.plans {
		if s.plans[i].ID == id {
			return i
		}
	}
	return -1
}

// DemoPlan is the sample plan a fresh install shows: one of three monthly
// installments already paid, the next due in thirty days.
func DemoPlan(now time.Time) models.MaintenancePlan {
	return models.MaintenancePlan{
		ID:                 "1",
		VehicleBrand:       models.BrandChangan,
		VehicleModel:       "New CS55 Plus",
		Year:               2023,
		MaintenanceMileage: 10000,
		NextPaymentDate:    now.Add(30 * 24 * time.Hour),
		PaymentMethod:      models.PaymentCard,
		Frequency:          models.FrequencyMonthly,
		InstallmentAmount:  2550,
		TotalInstallments:  3,
		PaidInstallments:   1,
		TotalAmount:        7650,
		Status:             models.PlanActive,
		CreatedAt:          now,
	}
}
