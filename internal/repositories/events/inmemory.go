package events

import (
	"context"
	"sync"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. The
// canonical log is a single append-order slice; the by-room and by-person
// views share the same event pointers.
type InMemoryRepository struct {
	mu       sync.RWMutex
	log      []*entities.Event
	byRoom   map[int][]*entities.Event
	byPerson map[int][]*entities.Event
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		byRoom:   make(map[int][]*entities.Event),
		byPerson: make(map[int][]*entities.Event),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Append stores a new event
func (r *InMemoryRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil || input.Event == nil {
		return nil, errors.InvalidArgument("event is required")
	}
	if input.Event.ID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	event := *input.Event
	r.log = append(r.log, &event)
	r.byRoom[event.ToRoomID] = append(r.byRoom[event.ToRoomID], &event)
	r.byPerson[event.PersonID] = append(r.byPerson[event.PersonID], &event)

	return &AppendOutput{Event: &event}, nil
}

// GetByRoom retrieves the events whose destination is the given room
func (r *InMemoryRepository) GetByRoom(ctx context.Context, input *GetByRoomInput) (*GetByRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetByRoomOutput{Events: copyEvents(r.byRoom[input.RoomID])}, nil
}

// GetByPerson retrieves the events in which the given person is the actor
func (r *InMemoryRepository) GetByPerson(ctx context.Context, input *GetByPersonInput) (*GetByPersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetByPersonOutput{Events: copyEvents(r.byPerson[input.PersonID])}, nil
}

// LastByPerson retrieves the most recent event for a person
func (r *InMemoryRepository) LastByPerson(ctx context.Context, input *LastByPersonInput) (*LastByPersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.byPerson[input.PersonID]
	if len(log) == 0 {
		return nil, errors.NotFoundf("no events recorded for person %d", input.PersonID)
	}

	event := *log[len(log)-1]
	return &LastByPersonOutput{Event: &event}, nil
}

// List retrieves every event in append order
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &ListOutput{Events: copyEvents(r.log)}, nil
}

// copyEvents returns value copies to prevent external mutation of the log
func copyEvents(log []*entities.Event) []*entities.Event {
	out := make([]*entities.Event, 0, len(log))
	for _, event := range log {
		e := *event
		out = append(out, &e)
	}
	return out
}
