package model

const (
	EntityName = "room"
)

type Room struct {
	ID        int64   `json:"room_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// Filter selects rooms from the inventory. It is evaluated per room, in
// insertion order; membership is decided by the filter alone, no implicit
// availability check is layered on.
type Filter func(Room) bool
