package repository

import (
	"sync"

	"hotel/internal/domains/booking/model"
)

// Booking is the in-memory booking ledger: an insertion-ordered list of
// active bookings. Ids are caller-assigned and not checked for
// uniqueness, so duplicates can accumulate; lookups and removal act on
// the first match only.
type Booking interface {
	Insert(booking model.Booking)
	Get(id int64) (model.Booking, bool)
	Remove(id int64) bool
	GetAll() []model.Booking
}

type repositoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func New() Booking {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Insert(booking model.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, booking)
}

func (r *repositoryImpl) Get(id int64) (model.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, booking := range r.bookings {
		if booking.ID == id {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func (r *repositoryImpl) Remove(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true
		}
	}

	return false
}

func (r *repositoryImpl) GetAll() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.Booking, len(r.bookings))
	copy(snapshot, r.bookings)

	return snapshot
}
