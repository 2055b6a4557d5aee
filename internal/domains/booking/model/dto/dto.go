package dto

import (
	"time"

	"hotel/internal/domains/booking/model"
)

// CreateBookingRequest carries the five required booking fields. All of
// them are pointers so that an absent field is distinguishable from a
// zero value and rejected by the required rule.
type CreateBookingRequest struct {
	BookingID  *int64     `json:"booking_id"  validate:"required"`
	RoomID     *int64     `json:"room_id"     validate:"required"`
	CustomerID *int64     `json:"customer_id" validate:"required"`
	StartDate  *time.Time `json:"start_date"  validate:"required"`
	EndDate    *time.Time `json:"end_date"    validate:"required"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		ID:         *c.BookingID,
		RoomID:     *c.RoomID,
		CustomerID: *c.CustomerID,
		StartDate:  *c.StartDate,
		EndDate:    *c.EndDate,
	}
}
