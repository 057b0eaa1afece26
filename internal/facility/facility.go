// Package facility holds the aggregate built at load time: the room graph,
// the people registry, and the derived-location query that ties the two to
// the event log.
package facility

import (
	"context"
	"iter"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/graph"
	"github.com/facilitydesk/facility-api/internal/repositories/events"
)

// DefaultOriginRoomID is where people with an empty activity log are placed
const DefaultOriginRoomID = 0

// Config holds the dependencies for the facility aggregate
type Config struct {
	Graph     *graph.Graph
	EventRepo events.Repository
	// OriginRoomID is the initial default room for people without events.
	// Zero means the conventional origin room id 0.
	OriginRoomID int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Graph == nil {
		vb.RequiredField("Graph")
	}
	if c.EventRepo == nil {
		vb.RequiredField("EventRepo")
	}

	return vb.Build()
}

// Facility is the registry of rooms and people. Rooms live in the graph;
// there is no separate flat room list, enumeration traverses from the
// origin. People are registered at import time and live for the process
// lifetime.
type Facility struct {
	graph        *graph.Graph
	eventRepo    events.Repository
	originRoomID int
	people       map[int]*entities.Person
	peopleOrder  []int
}

// New creates a facility aggregate with the provided dependencies
func New(cfg *Config) (*Facility, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Facility{
		graph:        cfg.Graph,
		eventRepo:    cfg.EventRepo,
		originRoomID: cfg.OriginRoomID,
		people:       make(map[int]*entities.Person),
	}, nil
}

// Graph returns the facility graph
func (f *Facility) Graph() *graph.Graph {
	return f.graph
}

// OriginRoomID returns the default initial room id
func (f *Facility) OriginRoomID() int {
	return f.originRoomID
}

// AddPerson registers a person. Person ids are externally assigned and must
// be unique.
func (f *Facility) AddPerson(p *entities.Person) error {
	if p == nil {
		return errors.InvalidArgument("person is required")
	}
	if _, exists := f.people[p.ID]; exists {
		return errors.AlreadyExistsf("person %d is already registered", p.ID)
	}

	f.people[p.ID] = p
	f.peopleOrder = append(f.peopleOrder, p.ID)
	return nil
}

// RoomByID returns the room with the given id
func (f *Facility) RoomByID(id int) (*entities.Room, error) {
	room, err := f.graph.Vertex(id)
	if err != nil {
		return nil, errors.NotFoundf("room %d not found", id)
	}
	return room, nil
}

// PersonByID returns the person with the given id
func (f *Facility) PersonByID(id int) (*entities.Person, error) {
	person, ok := f.people[id]
	if !ok {
		return nil, errors.NotFoundf("person %d not found", id)
	}
	return person, nil
}

// Rooms enumerates the facility's rooms by breadth-first traversal from the
// origin room
func (f *Facility) Rooms() (iter.Seq[*entities.Room], error) {
	return f.graph.BreadthFirst(f.originRoomID)
}

// People returns all registered people in registration order
func (f *Facility) People() []*entities.Person {
	out := make([]*entities.Person, 0, len(f.peopleOrder))
	for _, id := range f.peopleOrder {
		out = append(out, f.people[id])
	}
	return out
}

// CurrentLocation derives a person's location: the destination of the most
// recent event in their activity log, or the origin room when the log is
// empty.
func (f *Facility) CurrentLocation(ctx context.Context, personID int) (*entities.Room, error) {
	if _, err := f.PersonByID(personID); err != nil {
		return nil, err
	}

	last, err := f.eventRepo.LastByPerson(ctx, &events.LastByPersonInput{PersonID: personID})
	if err != nil {
		if errors.IsNotFound(err) {
			return f.RoomByID(f.originRoomID)
		}
		return nil, errors.Wrap(err, "failed to read activity log")
	}

	return f.RoomByID(last.Event.ToRoomID)
}
