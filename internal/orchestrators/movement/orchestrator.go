// Package movement implements the movement engine: it validates a person's
// relocation between rooms and applies it to the occupancy state and the
// event log.
package movement

//go:generate mockgen -destination=mock/mock_service.go -package=movementmock github.com/facilitydesk/facility-api/internal/orchestrators/movement Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/facilitydesk/facility-api/internal/access"
	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/facility"
	"github.com/facilitydesk/facility-api/internal/pkg/clock"
	"github.com/facilitydesk/facility-api/internal/pkg/idgen"
	"github.com/facilitydesk/facility-api/internal/repositories/events"
)

// Service defines the interface for movement operations
type Service interface {
	// Move validates and applies a single relocation
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)

	// Replay applies previously recorded movement events in order
	Replay(ctx context.Context, input *ReplayInput) (*ReplayOutput, error)
}

// Config holds the dependencies for the movement orchestrator
type Config struct {
	Facility    *facility.Facility
	Policy      *access.Policy
	EventRepo   events.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Facility == nil {
		vb.RequiredField("Facility")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.EventRepo == nil {
		vb.RequiredField("EventRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	// mu is the single writer lock: the check-occupancy-then-mutate
	// sequence below is not atomic without it.
	mu sync.Mutex

	facility  *facility.Facility
	policy    *access.Policy
	eventRepo events.Repository
	clock     clock.Clock
	idGen     idgen.Generator
}

// NewOrchestrator creates a new movement orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		facility:  cfg.Facility,
		policy:    cfg.Policy,
		eventRepo: cfg.EventRepo,
		clock:     cfg.Clock,
		idGen:     cfg.IDGenerator,
	}, nil
}

// Move validates and applies a single relocation. Rejections leave all
// occupancy counters and histories untouched; a rejected move is never
// queued or retried.
func (o *orchestrator) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	person, err := o.facility.PersonByID(input.PersonID)
	if err != nil {
		return nil, err
	}
	to, err := o.facility.RoomByID(input.ToRoomID)
	if err != nil {
		return nil, err
	}
	from, err := o.facility.CurrentLocation(ctx, input.PersonID)
	if err != nil {
		return nil, err
	}

	if from.ID == to.ID {
		return nil, errors.FailedPreconditionf("%s is already in room %d", person.Name, to.ID).
			WithMeta("person_id", person.ID).
			WithMeta("room_id", to.ID)
	}
	if !o.policy.HasPermission(person.Role, to) {
		return nil, errors.PermissionDeniedf("role %s has no access to room %d", person.Role, to.ID).
			WithMeta("person_id", person.ID).
			WithMeta("room_id", to.ID)
	}
	if to.Occupied {
		return nil, errors.ResourceExhaustedf("room %d is at capacity", to.ID).
			WithMeta("room_id", to.ID).
			WithMeta("capacity", to.Capacity)
	}

	at := input.At
	if at.IsZero() {
		at = o.clock.Now()
	}

	event := &entities.Event{
		ID:         o.idGen.Generate(),
		PersonID:   person.ID,
		FromRoomID: from.ID,
		ToRoomID:   to.ID,
		Timestamp:  at,
	}

	// Append before mutating counters: a failed append must leave the
	// occupancy state untouched.
	appended, err := o.eventRepo.Append(ctx, &events.AppendInput{Event: event})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record movement")
	}

	o.applyOccupancy(person, from, to)

	slog.InfoContext(ctx, "person moved",
		"person_id", person.ID,
		"from_room", from.ID,
		"to_room", to.ID,
		"at", at,
	)

	return &MoveOutput{
		Event: appended.Event,
		From:  from,
		To:    to,
	}, nil
}

// Replay applies recorded events in file order. In strict mode each record
// goes through the full live-move validation and the first rejection aborts
// the replay. In non-strict mode records with unknown ids are skipped and
// occupancy counters are left as imported: the room snapshot is
// authoritative and only histories and occupant sets are rebuilt.
func (o *orchestrator) Replay(ctx context.Context, input *ReplayInput) (*ReplayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Strict {
		return o.replayStrict(ctx, input.Records)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out := &ReplayOutput{}
	for _, record := range input.Records {
		person, err := o.facility.PersonByID(record.PersonID)
		if err != nil {
			slog.WarnContext(ctx, "skipping event for unknown person", "person_id", record.PersonID)
			out.Skipped++
			continue
		}
		from, err := o.facility.RoomByID(record.FromRoomID)
		if err != nil {
			slog.WarnContext(ctx, "skipping event for unknown source room", "room_id", record.FromRoomID)
			out.Skipped++
			continue
		}
		to, err := o.facility.RoomByID(record.ToRoomID)
		if err != nil {
			slog.WarnContext(ctx, "skipping event for unknown destination room", "room_id", record.ToRoomID)
			out.Skipped++
			continue
		}

		event := &entities.Event{
			ID:         o.idGen.Generate(),
			PersonID:   person.ID,
			FromRoomID: from.ID,
			ToRoomID:   to.ID,
			Timestamp:  record.At,
		}
		if _, err := o.eventRepo.Append(ctx, &events.AppendInput{Event: event}); err != nil {
			return nil, errors.Wrap(err, "failed to record replayed event")
		}

		to.AddOccupant(person)
		from.RemoveOccupant(person)
		out.Applied++
	}
	return out, nil
}

func (o *orchestrator) replayStrict(ctx context.Context, records []ReplayRecord) (*ReplayOutput, error) {
	out := &ReplayOutput{}
	for i, record := range records {
		_, err := o.Move(ctx, &MoveInput{
			PersonID: record.PersonID,
			ToRoomID: record.ToRoomID,
			At:       record.At,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "replay rejected at record %d", i)
		}
		out.Applied++
	}
	return out, nil
}

// applyOccupancy performs the accepted-move state transition. The decrement
// only fires when the source counter is positive; the increment relies on
// the capacity check above, counters themselves do not clamp.
func (o *orchestrator) applyOccupancy(person *entities.Person, from, to *entities.Room) {
	to.IncreaseOccupation()
	if from.CurrentOccupation > 0 {
		from.DecreaseOccupation()
	}
	to.RefreshOccupied()
	from.RefreshOccupied()

	to.AddOccupant(person)
	from.RemoveOccupant(person)
}
