package main

import (
	"context"
	"time"

	"hotel/config"
	"hotel/di"
	bookingDto "hotel/internal/domains/booking/model/dto"
	customerModel "hotel/internal/domains/customer/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/logger"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()
	ctx := context.Background()

	app.Rooms.Add(ctx, roomModel.Room{ID: 101, Type: "Standard", Price: 120, Available: true})
	app.Rooms.Add(ctx, roomModel.Room{ID: 102, Type: "Deluxe", Price: 250, Available: true})
	app.Customers.Add(ctx, customerModel.Customer{ID: 123, Name: "Ivan Petrov"})

	booking, err := app.Bookings.Create(ctx, bookingDto.CreateBookingRequest{
		BookingID:  int64Ptr(1),
		RoomID:     int64Ptr(101),
		CustomerID: int64Ptr(123),
		StartDate:  timePtr(timezone.Date(2026, time.March, 1)),
		EndDate:    timePtr(timezone.Date(2026, time.March, 4)),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		return
	}

	log.Info().Stringer("booking", booking).Msg("booking created")

	available := app.Rooms.GetAvailable(ctx, func(r roomModel.Room) bool { return r.Available })
	log.Info().Int("count", len(available)).Msg("rooms still available")

	if err := app.Bookings.Cancel(ctx, booking.ID); err != nil {
		logger.ErrorWithStack(err)
		return
	}

	log.Info().Int("bookings", len(app.Bookings.GetAll(ctx))).Msg("ledger after cancellation")
}
