package repository

import (
	"sync"

	"hotel/internal/domains/customer/model"
)

// Customer is the in-memory customer registry, insertion ordered.
type Customer interface {
	Insert(customer model.Customer)
	Get(id int64) (model.Customer, bool)
	GetAll() []model.Customer
}

type repositoryImpl struct {
	mu        sync.RWMutex
	customers []model.Customer
}

func New() Customer {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Insert(customer model.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = append(r.customers, customer)
}

func (r *repositoryImpl) Get(id int64) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.ID == id {
			return customer, true
		}
	}

	return model.Customer{}, false
}

func (r *repositoryImpl) GetAll() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.Customer, len(r.customers))
	copy(snapshot, r.customers)

	return snapshot
}
