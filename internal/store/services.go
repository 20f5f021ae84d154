package store

import (
	"sync"

	"github.com/ukydev/premier-motors/internal/models"
)

// ServiceStore keeps completed bookings (history, newest first) and pending
// bookings (upcoming, in booking order).
type ServiceStore struct {
	mu       sync.RWMutex
	history  []models.ServiceRecord
	upcoming []models.ServiceRecord
	now      Clock
	newID    func() string
}

// NewServiceStore creates an empty service store.
func NewServiceStore(now Clock) *ServiceStore {
	return &ServiceStore{
		history:  []models.ServiceRecord{},
		upcoming: []models.ServiceRecord{},
		now:      clockOrNow(now),
		newID:    newID,
	}
}

// NewBooking builds a pending record for service on vehicle, priced at the
// current catalog price. It does not store the record.
func (s *ServiceStore) NewBooking(service models.Service, vehicle models.VehicleInfo, plan *models.PaymentPlanInfo) models.ServiceRecord {
	if vehicle.Type == "" {
		vehicle.Type = models.VehicleCar
	}
	rec := models.ServiceRecord{
		ID:          s.newID(),
		Service:     service,
		Date:        s.now(),
		VehicleInfo: vehicle,
		Status:      models.RecordPending,
		Total:       service.Price,
		PaymentPlan: plan,
	}
	return rec.Clone()
}

// AddToHistory puts an already completed record at the top of history.
func (s *ServiceStore) AddToHistory(rec models.ServiceRecord) {
	rec = rec.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]models.ServiceRecord{rec}, s.history...)
}

// AddUpcoming appends a pending booking.
func (s *ServiceStore) AddUpcoming(rec models.ServiceRecord) {
	rec = rec.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upcoming = append(s.upcoming, rec)
}

// CompleteService moves a pending booking into history as completed.
func (s *ServiceStore) CompleteService(id string) (models.ServiceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOfRecord(s.upcoming, id)
	if i < 0 {
		return models.ServiceRecord{}, false
	}
	rec := s.upcoming[i]
	rec.Status = models.RecordCompleted
	s.history = append([]models.ServiceRecord{rec}, s.history...)
	s.upcoming = append(s.upcoming[:i:i], s.upcoming[i+1:]...)
	return rec.Clone(), true
}

// CancelService drops a pending booking. The record is not kept anywhere.
func (s *ServiceStore) CancelService(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOfRecord(s.upcoming, id)
	if i < 0 {
		return false
	}
	s.upcoming = append(s.upcoming[:i:i], s.upcoming[i+1:]...)
	return true
}

// ClearHistory forgets every completed service.
func (s *ServiceStore) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []models.ServiceRecord{}
}

// History returns completed services, newest first.
func (s *ServiceStore) History() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.history)
}

// Upcoming returns pending services in booking order.
func (s *ServiceStore) Upcoming() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.upcoming)
}

// Recent returns up to n of the latest completed services.
func (s *ServiceStore) Recent(n int) []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.history) {
		n = len(s.history)
	}
	if n < 0 {
		n = 0
	}
	return cloneRecords(s.history[:n])
}

func indexOfRecord(records []models.ServiceRecord, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(records []models.ServiceRecord) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}
	return out
}
