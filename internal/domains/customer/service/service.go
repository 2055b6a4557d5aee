package service

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/repository"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Customer is a thin registry. Booking logic carries customer ids as
// opaque values and never consults it; it exists for callers that want
// to resolve ids back to people.
type Customer interface {
	Add(ctx context.Context, customer model.Customer)
	FindByID(ctx context.Context, id int64) (model.Customer, bool)
	GetAll(ctx context.Context) []model.Customer
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, customer model.Customer) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Add")
	defer scope.End()

	s.repo.Insert(customer)

	log.Debug().Int64("customer_id", customer.ID).Str("name", customer.Name).Msg("customer registered")
}

func (s *serviceImpl) FindByID(ctx context.Context, id int64) (model.Customer, bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.FindByID")
	defer scope.End()

	return s.repo.Get(id)
}

func (s *serviceImpl) GetAll(ctx context.Context) []model.Customer {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()

	return s.repo.GetAll()
}
