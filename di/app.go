package di

import (
	bookingService "hotel/internal/domains/booking/service"
	customerService "hotel/internal/domains/customer/service"
	roomService "hotel/internal/domains/room/service"
)

// App bundles the assembled domain services.
type App struct {
	Rooms     roomService.Room
	Customers customerService.Customer
	Bookings  bookingService.Booking
}
