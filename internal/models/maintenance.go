package models

import "time"

// PaymentMethod is how the customer pays installments.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentApp  PaymentMethod = "app"
	PaymentCash PaymentMethod = "cash"
)

// PaymentFrequency is the installment cadence.
type PaymentFrequency string

const (
	FrequencyWeekly   PaymentFrequency = "weekly"
	FrequencyBiweekly PaymentFrequency = "biweekly"
	FrequencyMonthly  PaymentFrequency = "monthly"
)

// PlanStatus is the lifecycle state of a maintenance plan.
type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanCancelled PlanStatus = "cancelled"
)

// MaintenancePlan represents an installment plan paying for a future maintenance service.
type MaintenancePlan struct {
	ID                 string           `json:"id"`
	VehicleBrand       Brand            `json:"vehicle_brand"`
	VehicleModel       string           `json:"vehicle_model"`
	Year               int              `json:"year"`
	MaintenanceMileage int              `json:"maintenance_mileage"` // in kilometers
	NextPaymentDate    time.Time        `json:"next_payment_date"`
	PaymentMethod      PaymentMethod    `json:"payment_method"`
	Frequency          PaymentFrequency `json:"frequency"`
	InstallmentAmount  int              `json:"installment_amount"`
	TotalInstallments  int              `json:"total_installments"`
	PaidInstallments   int              `json:"paid_installments"`
	TotalAmount        int              `json:"total_amount"`
	Status             PlanStatus       `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
}

// PlanDraft is a plan before the store assigns its id and creation time.
type PlanDraft struct {
	VehicleBrand       Brand            `json:"vehicle_brand"`
	VehicleModel       string           `json:"vehicle_model"`
	Year               int              `json:"year"`
	MaintenanceMileage int              `json:"maintenance_mileage"`
	NextPaymentDate    time.Time        `json:"next_payment_date"`
	PaymentMethod      PaymentMethod    `json:"payment_method"`
	Frequency          PaymentFrequency `json:"frequency"`
	InstallmentAmount  int              `json:"installment_amount"`
	TotalInstallments  int              `json:"total_installments"`
	PaidInstallments   int              `json:"paid_installments"`
	TotalAmount        int              `json:"total_amount"`
	Status             PlanStatus       `json:"status"`
}

// IsTerminal reports whether the plan can no longer progress.
func (p MaintenancePlan) IsTerminal() bool {
	return p.Status == PlanCompleted || p.Status == PlanCancelled
}

// RemainingInstallments is the number of installments still owed.
func (p MaintenancePlan) RemainingInstallments() int {
	if p.PaidInstallments >= p.TotalInstallments {
		return 0
	}
	return p.TotalInstallments - p.PaidInstallments
}

// IsValidPaymentMethod checks if a payment method is valid
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCard, PaymentApp, PaymentCash:
		return true
	default:
		return false
	}
}

// IsValidPlanStatus checks if a plan status is valid
func IsValidPlanStatus(s PlanStatus) bool {
	switch s {
	case PlanActive, PlanCompleted, PlanCancelled:
		return true
	default:
		return false
	}
}
