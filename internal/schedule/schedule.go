// Package schedule computes installment counts, amounts and due dates for
// maintenance payment plans. Every schedule spans a fixed three-month horizon.
//
// Monthly steps use time.AddDate, which normalizes overflowing days forward:
// Jan 31 plus one month lands on Mar 3 (Mar 2 in leap years). Every caller,
// including the plan store, goes through NextPaymentDate so the rule is the
// same everywhere.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ukydev/premier-motors/internal/models"
)

var ErrUnknownFrequency = errors.New("unknown payment frequency")

// TotalInstallments returns how many installments a frequency needs to cover three months.
// It panics on an unknown frequency; validate user input with ParseFrequency first.
func TotalInstallments(f models.PaymentFrequency) int {
	switch f {
	case models.FrequencyWeekly:
		return 12
	case models.FrequencyBiweekly:
		return 6
	case models.FrequencyMonthly:
		return 3
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownFrequency, f))
	}
}

// InstallmentAmount splits total across the frequency's installments, rounding up.
func InstallmentAmount(total int, f models.PaymentFrequency) int {
	if total <= 0 {
		panic(fmt.Errorf("installment total must be positive, got %d", total))
	}
	n := TotalInstallments(f)
	q := total / n
	if total%n != 0 {
		q++
	}
	return q
}

// NextPaymentDate advances from by one installment step.
func NextPaymentDate(f models.PaymentFrequency, from time.Time) time.Time {
	switch f {
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return from.AddDate(0, 0, 15)
	case models.FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	default:
		panic(fmt.Errorf("%w: %q", ErrUnknownFrequency, f))
	}
}

// ParseFrequency validates a frequency coming from user input.
func ParseFrequency(s string) (models.PaymentFrequency, error) {
	f := models.PaymentFrequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
}

// Quote is the schedule a plan would get if created now.
type Quote struct {
	Frequency         models.PaymentFrequency `json:"frequency"`
	TotalAmount       int                     `json:"total_amount"`
	TotalInstallments int                     `json:"total_installments"`
	InstallmentAmount int                     `json:"installment_amount"`
	FirstPaymentDate  time.Time               `json:"first_payment_date"`
}

// NewQuote bundles the calculator results for one total and frequency.
func NewQuote(total int, f models.PaymentFrequency, now time.Time) Quote {
	return Quote{
		Frequency:         f,
		TotalAmount:       total,
		TotalInstallments: TotalInstallments(f),
		InstallmentAmount: InstallmentAmount(total, f),
		FirstPaymentDate:  NextPaymentDate(f, now),
	}
}

// DueDates lists the due date of every installment, starting with first.
func DueDates(f models.PaymentFrequency, first time.Time) []time.Time {
	n := TotalInstallments(f)
	out := make([]time.Time, 0, n)
	d := first
	for i := 0; i < n; i++ {
		out = append(out, d)
		d = NextPaymentDate(f, d)
	}
	return out
}
