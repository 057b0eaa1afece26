package events

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	redisclient "github.com/facilitydesk/facility-api/internal/redis"
)

const (
	// Key patterns:
	//   event:{event_id}          -> JSON payload
	//   events:all                -> list of event ids, append order
	//   events:room:{room_id}     -> list of event ids with that destination
	//   events:person:{person_id} -> list of event ids with that actor
	eventKeyPrefix  = "event:"
	allEventsKey    = "events:all"
	roomEventsKey   = "events:room:%d"
	personEventsKey = "events:person:%d"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for movement events
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append stores a new event
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil || input.Event == nil {
		return nil, errors.InvalidArgument("event is required")
	}
	if input.Event.ID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	payload, err := json.Marshal(input.Event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize event")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, eventKeyPrefix+input.Event.ID, payload, 0)
	pipe.RPush(ctx, allEventsKey, input.Event.ID)
	pipe.RPush(ctx, fmt.Sprintf(roomEventsKey, input.Event.ToRoomID), input.Event.ID)
	pipe.RPush(ctx, fmt.Sprintf(personEventsKey, input.Event.PersonID), input.Event.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store event")
	}

	event := *input.Event
	return &AppendOutput{Event: &event}, nil
}

// GetByRoom retrieves the events whose destination is the given room
func (r *redisRepository) GetByRoom(ctx context.Context, input *GetByRoomInput) (*GetByRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	eventList, err := r.eventsForKey(ctx, fmt.Sprintf(roomEventsKey, input.RoomID))
	if err != nil {
		return nil, err
	}
	return &GetByRoomOutput{Events: eventList}, nil
}

// GetByPerson retrieves the events in which the given person is the actor
func (r *redisRepository) GetByPerson(ctx context.Context, input *GetByPersonInput) (*GetByPersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	eventList, err := r.eventsForKey(ctx, fmt.Sprintf(personEventsKey, input.PersonID))
	if err != nil {
		return nil, err
	}
	return &GetByPersonOutput{Events: eventList}, nil
}

// LastByPerson retrieves the most recent event for a person
func (r *redisRepository) LastByPerson(ctx context.Context, input *LastByPersonInput) (*LastByPersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ids, err := r.client.LRange(ctx, fmt.Sprintf(personEventsKey, input.PersonID), -1, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read event index")
	}
	if len(ids) == 0 {
		return nil, errors.NotFoundf("no events recorded for person %d", input.PersonID)
	}

	event, err := r.getEvent(ctx, ids[0])
	if err != nil {
		return nil, err
	}
	return &LastByPersonOutput{Event: event}, nil
}

// List retrieves every event in append order
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	eventList, err := r.eventsForKey(ctx, allEventsKey)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Events: eventList}, nil
}

func (r *redisRepository) eventsForKey(ctx context.Context, indexKey string) ([]*entities.Event, error) {
	ids, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read event index")
	}

	out := make([]*entities.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.getEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}

func (r *redisRepository) getEvent(ctx context.Context, id string) (*entities.Event, error) {
	payload, err := r.client.Get(ctx, eventKeyPrefix+id).Result()
	if err == goredis.Nil {
		return nil, errors.NotFoundf("event %s not found", id)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read event")
	}

	var event entities.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return nil, errors.Wrapf(err, "failed to deserialize event %s", id)
	}
	return &event, nil
}
