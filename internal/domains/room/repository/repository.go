package repository

import (
	"sync"

	"hotel/internal/domains/room/model"
)

// Room is the authoritative in-memory room inventory. Rooms are held in
// insertion order for the lifetime of the process; reads hand out copies,
// never references into the live slice.
type Room interface {
	Insert(room model.Room)
	Get(id int64) (model.Room, bool)
	GetAll() []model.Room
	Filter(fn model.Filter) []model.Room
	SetAvailability(id int64, available bool) bool
}

type repositoryImpl struct {
	mu    sync.RWMutex
	rooms []model.Room
}

func New() Room {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Insert(room model.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = append(r.rooms, room)
}

func (r *repositoryImpl) Get(id int64) (model.Room, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.ID == id {
			return room, true
		}
	}

	return model.Room{}, false
}

func (r *repositoryImpl) GetAll() []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]model.Room, len(r.rooms))
	copy(snapshot, r.rooms)

	return snapshot
}

func (r *repositoryImpl) Filter(fn model.Filter) []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Room, 0)
	if fn == nil {
		return matched
	}

	for _, room := range r.rooms {
		if fn(room) {
			matched = append(matched, room)
		}
	}

	return matched
}

func (r *repositoryImpl) SetAvailability(id int64, available bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rooms {
		if r.rooms[i].ID == id {
			r.rooms[i].Available = available
			return true
		}
	}

	return false
}
