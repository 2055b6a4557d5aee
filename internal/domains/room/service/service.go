package service

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Room owns the room inventory. None of its operations fail: lookups for
// unknown ids degrade to an absent result or a no-op so that callers can
// compose without error plumbing, at the cost of not telling a bad id
// apart from a room that is genuinely absent.
type Room interface {
	Add(ctx context.Context, room model.Room)
	FindByID(ctx context.Context, id int64) (model.Room, bool)
	GetAvailable(ctx context.Context, filter model.Filter) []model.Room
	UpdateAvailability(ctx context.Context, id int64, available bool)
	GetAll(ctx context.Context) []model.Room
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, room model.Room) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Add")
	defer scope.End()

	s.repo.Insert(room)

	log.Debug().
		Int64("room_id", room.ID).
		Str("type", room.Type).
		Float64("price", room.Price).
		Bool("available", room.Available).
		Msg("room added to inventory")
}

// FindByID returns a copy of the first room with the given id. The second
// return value is false when no room matches.
func (s *serviceImpl) FindByID(ctx context.Context, id int64) (model.Room, bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.FindByID")
	defer scope.End()

	return s.repo.Get(id)
}

// GetAvailable returns the rooms matching the filter, in insertion order.
// A nil filter matches nothing and yields an empty result.
func (s *serviceImpl) GetAvailable(ctx context.Context, filter model.Filter) []model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAvailable")
	defer scope.End()

	return s.repo.Filter(filter)
}

// UpdateAvailability flips the availability flag of the room with the
// given id. An unknown id is a silent no-op.
func (s *serviceImpl) UpdateAvailability(ctx context.Context, id int64, available bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateAvailability")
	defer scope.End()

	if !s.repo.SetAvailability(id, available) {
		log.Debug().Int64("room_id", id).Msg("availability update skipped, room not in inventory")
		return
	}

	log.Debug().Int64("room_id", id).Bool("available", available).Msg("room availability updated")
}

// GetAll returns a snapshot copy of the inventory in insertion order.
// Mutating the returned slice never affects the live inventory.
func (s *serviceImpl) GetAll(ctx context.Context) []model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()

	return s.repo.GetAll()
}
