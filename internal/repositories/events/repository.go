// Package events provides the canonical append-only store for movement
// events. Room-side and person-side histories are indexes over the same
// records: every event is stored once and reachable by destination room id
// and by actor id.
package events

//go:generate mockgen -destination=mock/mock_repository.go -package=eventsmock github.com/facilitydesk/facility-api/internal/repositories/events Repository

import (
	"context"

	"github.com/facilitydesk/facility-api/internal/entities"
)

// Repository defines the storage interface for movement events
type Repository interface {
	// Append stores a new event. Events are immutable once appended.
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// GetByRoom retrieves the events whose destination is the given room,
	// in append order
	GetByRoom(ctx context.Context, input *GetByRoomInput) (*GetByRoomOutput, error)

	// GetByPerson retrieves the events in which the given person is the
	// actor, in append order
	GetByPerson(ctx context.Context, input *GetByPersonInput) (*GetByPersonOutput, error)

	// LastByPerson retrieves the most recent event for a person; a person
	// with no recorded events yields a NotFound error
	LastByPerson(ctx context.Context, input *LastByPersonInput) (*LastByPersonOutput, error)

	// List retrieves every event in append order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// AppendInput defines the request for storing an event
type AppendInput struct {
	Event *entities.Event
}

// AppendOutput defines the response for storing an event
type AppendOutput struct {
	Event *entities.Event
}

// GetByRoomInput defines the request for a room's event history
type GetByRoomInput struct {
	RoomID int
}

// GetByRoomOutput defines the response for a room's event history
type GetByRoomOutput struct {
	Events []*entities.Event
}

// GetByPersonInput defines the request for a person's activity log
type GetByPersonInput struct {
	PersonID int
}

// GetByPersonOutput defines the response for a person's activity log
type GetByPersonOutput struct {
	Events []*entities.Event
}

// LastByPersonInput defines the request for a person's latest event
type LastByPersonInput struct {
	PersonID int
}

// LastByPersonOutput defines the response for a person's latest event
type LastByPersonOutput struct {
	Event *entities.Event
}

// ListInput defines the request for the full event log
type ListInput struct{}

// ListOutput defines the response for the full event log
type ListOutput struct {
	Events []*entities.Event
}
