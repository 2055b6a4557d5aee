package model

import (
	"fmt"
	"time"

	"hotel/shared/constant"
)

const (
	EntityName = "booking"
)

type Booking struct {
	ID         int64     `json:"booking_id"`
	RoomID     int64     `json:"room_id"`
	CustomerID int64     `json:"customer_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// String renders the booking the way it is embedded in notification messages.
func (b Booking) String() string {
	return fmt.Sprintf("booking %d, room %d, customer %d, %s to %s",
		b.ID,
		b.RoomID,
		b.CustomerID,
		b.StartDate.Format(constant.DateFormat),
		b.EndDate.Format(constant.DateFormat),
	)
}
