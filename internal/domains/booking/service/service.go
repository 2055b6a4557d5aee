package service

import (
	"context"
	"fmt"
	"sync"

	"hotel/infras/notification"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

// Booking owns the booking ledger and enforces the one cross-entity
// invariant: a booking is only created against an existing, available
// room, and creating it flips the room to unavailable until cancelled.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (model.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
	GetAll(ctx context.Context) []model.Booking
}

type serviceImpl struct {
	mu       sync.Mutex
	repo     repository.Booking
	rooms    roomService.Room
	notifier notification.Notifier
	otel     otel.Otel
}

func New(repo repository.Booking, rooms roomService.Room, notifier notification.Notifier, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		rooms:    rooms,
		notifier: notifier,
		otel:     otel,
	}
}

// Create validates the request, checks the room, records the booking,
// flips the room to unavailable and sends the confirmation. The
// room-missing and room-occupied cases are deliberately collapsed into
// the single RoomUnavailable failure. A notifier error propagates after
// the ledger write and the availability flip, with no rollback.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if vErr := validator.ValidateStruct(&req); vErr != nil {
		log.Error().Err(vErr).Msg("booking request rejected by validation")

		return res, failure.InvalidBookingParams // nolint:wrapcheck
	}

	if req.StartDate.After(*req.EndDate) {
		log.Error().
			Time("start_date", *req.StartDate).
			Time("end_date", *req.EndDate).
			Msg("booking request has inverted date range")

		return res, failure.InvalidDateRange // nolint:wrapcheck
	}

	// Lookup, availability check, ledger write and availability flip
	// form one critical section per service, so two concurrent creates
	// cannot both observe the same room as available.
	s.mu.Lock()
	defer s.mu.Unlock()

	room, found := s.rooms.FindByID(ctx, *req.RoomID)
	if !found || !room.Available {
		log.Debug().
			Int64("room_id", *req.RoomID).
			Bool("found", found).
			Msg("room rejected for booking")

		return res, failure.RoomUnavailable // nolint:wrapcheck
	}

	booking := req.ToModel()
	s.repo.Insert(booking)
	s.rooms.UpdateAvailability(ctx, booking.RoomID, false)

	if err = s.notifier.Send(ctx, booking.CustomerID, "Your booking is confirmed: "+booking.String()); err != nil {
		// The booking stays recorded and the room stays unavailable;
		// the caller learns about the failed confirmation from the error.
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to send booking confirmation")

		return res, fmt.Errorf("sending booking confirmation: %w", err)
	}

	log.Info().
		Int64("booking_id", booking.ID).
		Int64("room_id", booking.RoomID).
		Int64("customer_id", booking.CustomerID).
		Msg("booking created")

	return booking, nil
}

// Cancel removes the first ledger entry with the given id, restoring the
// room to available and notifying the customer first. If the notifier
// fails, the room has already been freed but the entry remains in the
// ledger; the caller must treat the returned error as that inconsistency.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, found := s.repo.Get(bookingID)
	if !found {
		log.Error().Int64("booking_id", bookingID).Msg("booking not found for cancellation")

		return failure.BookingNotFound // nolint:wrapcheck
	}

	s.rooms.UpdateAvailability(ctx, booking.RoomID, true)

	if err = s.notifier.Send(ctx, booking.CustomerID, "Your booking is cancelled: "+booking.String()); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to send booking cancellation")

		return fmt.Errorf("sending booking cancellation: %w", err)
	}

	s.repo.Remove(bookingID)

	log.Info().
		Int64("booking_id", booking.ID).
		Int64("room_id", booking.RoomID).
		Int64("customer_id", booking.CustomerID).
		Msg("booking cancelled")

	return nil
}

// GetAll returns a snapshot copy of the ledger in insertion order.
func (s *serviceImpl) GetAll(ctx context.Context) []model.Booking {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()

	return s.repo.GetAll()
}
