// Package tracing answers contact queries: who shared space with a person
// or a room within a time window.
package tracing

//go:generate mockgen -destination=mock/mock_service.go -package=tracingmock github.com/facilitydesk/facility-api/internal/orchestrators/tracing Service

import (
	"context"
	"time"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/facility"
	"github.com/facilitydesk/facility-api/internal/repositories/events"
)

// Service defines the interface for contact-tracing queries
type Service interface {
	// ContactsOfPerson reports who was co-located with a person within the
	// window
	ContactsOfPerson(ctx context.Context, input *ContactsOfPersonInput) (*ContactsOfPersonOutput, error)

	// ContactsOfRoom reports who entered a room within the window
	ContactsOfRoom(ctx context.Context, input *ContactsOfRoomInput) (*ContactsOfRoomOutput, error)
}

// Config holds the dependencies for the tracing orchestrator
type Config struct {
	Facility  *facility.Facility
	EventRepo events.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Facility == nil {
		vb.RequiredField("Facility")
	}
	if c.EventRepo == nil {
		vb.RequiredField("EventRepo")
	}

	return vb.Build()
}

// ContactsOfPersonInput defines a person-granularity contact query
type ContactsOfPersonInput struct {
	PersonID int
	From     time.Time
	To       time.Time
}

// ContactsOfPersonOutput lists the contacts found; empty is a valid outcome
type ContactsOfPersonOutput struct {
	Contacts []*entities.Person
}

// ContactsOfRoomInput defines a room-granularity contact query
type ContactsOfRoomInput struct {
	RoomID int
	From   time.Time
	To     time.Time
}

// ContactsOfRoomOutput lists the contacts found; empty is a valid outcome
type ContactsOfRoomOutput struct {
	Contacts []*entities.Person
}

type orchestrator struct {
	facility  *facility.Facility
	eventRepo events.Repository
}

// NewOrchestrator creates a new tracing orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		facility:  cfg.Facility,
		eventRepo: cfg.EventRepo,
	}, nil
}

// ContactsOfPerson scans the full event log for events whose destination is
// the person's current location within the open window, excluding the
// person themselves. Contacts are deduplicated by identity, first-seen
// order preserved.
func (o *orchestrator) ContactsOfPerson(ctx context.Context, input *ContactsOfPersonInput) (*ContactsOfPersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateWindow(input.From, input.To); err != nil {
		return nil, err
	}

	person, err := o.facility.PersonByID(input.PersonID)
	if err != nil {
		return nil, err
	}
	location, err := o.facility.CurrentLocation(ctx, input.PersonID)
	if err != nil {
		return nil, err
	}

	log, err := o.eventRepo.List(ctx, &events.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read event log")
	}

	var contacts []*entities.Person
	seen := make(map[int]bool)
	for _, event := range log.Events {
		if !inWindow(event.Timestamp, input.From, input.To) {
			continue
		}
		if event.ToRoomID != location.ID || event.PersonID == person.ID {
			continue
		}
		if seen[event.PersonID] {
			continue
		}
		seen[event.PersonID] = true

		contact, err := o.facility.PersonByID(event.PersonID)
		if err != nil {
			return nil, errors.Wrapf(err, "event %s references unknown person", event.ID)
		}
		contacts = append(contacts, contact)
	}

	return &ContactsOfPersonOutput{Contacts: contacts}, nil
}

// ContactsOfRoom scans the room's own history for events within the open
// window, regardless of who moved out since. Contacts are deduplicated by
// identity, first-seen order preserved.
func (o *orchestrator) ContactsOfRoom(ctx context.Context, input *ContactsOfRoomInput) (*ContactsOfRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateWindow(input.From, input.To); err != nil {
		return nil, err
	}

	room, err := o.facility.RoomByID(input.RoomID)
	if err != nil {
		return nil, err
	}

	history, err := o.eventRepo.GetByRoom(ctx, &events.GetByRoomInput{RoomID: room.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read room history")
	}

	var contacts []*entities.Person
	seen := make(map[int]bool)
	for _, event := range history.Events {
		if !inWindow(event.Timestamp, input.From, input.To) {
			continue
		}
		if seen[event.PersonID] {
			continue
		}
		seen[event.PersonID] = true

		contact, err := o.facility.PersonByID(event.PersonID)
		if err != nil {
			return nil, errors.Wrapf(err, "event %s references unknown person", event.ID)
		}
		contacts = append(contacts, contact)
	}

	return &ContactsOfRoomOutput{Contacts: contacts}, nil
}

// inWindow applies the open-interval semantics: events exactly at either
// bound are excluded.
func inWindow(ts, from, to time.Time) bool {
	return ts.After(from) && ts.Before(to)
}

func validateWindow(from, to time.Time) error {
	vb := errors.NewValidationBuilder()
	if from.IsZero() {
		vb.RequiredField("From")
	}
	if to.IsZero() {
		vb.RequiredField("To")
	}
	return vb.Build()
}
