package tracing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/facility"
	"github.com/facilitydesk/facility-api/internal/graph"
	"github.com/facilitydesk/facility-api/internal/orchestrators/tracing"
	"github.com/facilitydesk/facility-api/internal/repositories/events"
)

var (
	windowFrom = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	windowTo   = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

type traceFixture struct {
	facility *facility.Facility
	repo     *events.InMemoryRepository
	svc      tracing.Service
	alice    *entities.Person
	bob      *entities.Person
	carol    *entities.Person
}

func newTraceFixture(t *testing.T) *traceFixture {
	t.Helper()

	g := graph.New()
	require.NoError(t, g.AddVertex(entities.NewRoom(0, "Entrance", entities.RoomTypeExit, 20, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(1, "Ward", entities.RoomTypeRecovery, 5, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(2, "Canteen", entities.RoomTypeCanteen, 5, nil)))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	repo := events.NewInMemory()
	fac, err := facility.New(&facility.Config{Graph: g, EventRepo: repo})
	require.NoError(t, err)

	f := &traceFixture{
		facility: fac,
		repo:     repo,
		alice:    entities.NewPerson(1, "Alice", 34, entities.RoleDoctor),
		bob:      entities.NewPerson(2, "Bob", 52, entities.RolePatient),
		carol:    entities.NewPerson(3, "Carol", 29, entities.RoleNurse),
	}
	for _, p := range []*entities.Person{f.alice, f.bob, f.carol} {
		require.NoError(t, fac.AddPerson(p))
	}

	f.svc, err = tracing.NewOrchestrator(&tracing.Config{Facility: fac, EventRepo: repo})
	require.NoError(t, err)
	return f
}

func (f *traceFixture) record(t *testing.T, id string, personID, toRoomID int, at time.Time) {
	t.Helper()

	_, err := f.repo.Append(context.Background(), &events.AppendInput{Event: &entities.Event{
		ID:        id,
		PersonID:  personID,
		ToRoomID:  toRoomID,
		Timestamp: at,
	}})
	require.NoError(t, err)
}

func TestNewOrchestrator_Validation(t *testing.T) {
	_, err := tracing.NewOrchestrator(&tracing.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOrchestrator_ContactsOfPerson(t *testing.T) {
	ctx := context.Background()
	f := newTraceFixture(t)

	// Alice ends up in the ward; Bob entered it inside the window, Carol
	// entered the canteen instead.
	f.record(t, "evt_1", f.alice.ID, 1, windowFrom.Add(time.Hour))
	f.record(t, "evt_2", f.bob.ID, 1, windowFrom.Add(2*time.Hour))
	f.record(t, "evt_3", f.carol.ID, 2, windowFrom.Add(2*time.Hour))

	out, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{
		PersonID: f.alice.ID,
		From:     windowFrom,
		To:       windowTo,
	})
	require.NoError(t, err)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, f.bob.ID, out.Contacts[0].ID)

	t.Run("contact symmetry", func(t *testing.T) {
		out, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{
			PersonID: f.bob.ID,
			From:     windowFrom,
			To:       windowTo,
		})
		require.NoError(t, err)
		require.Len(t, out.Contacts, 1)
		assert.Equal(t, f.alice.ID, out.Contacts[0].ID)
	})

	t.Run("the person is never their own contact", func(t *testing.T) {
		for _, contact := range out.Contacts {
			assert.NotEqual(t, f.alice.ID, contact.ID)
		}
	})

	t.Run("repeat entries are reported once", func(t *testing.T) {
		f.record(t, "evt_4", f.bob.ID, 1, windowFrom.Add(3*time.Hour))

		out, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{
			PersonID: f.alice.ID,
			From:     windowFrom,
			To:       windowTo,
		})
		require.NoError(t, err)
		assert.Len(t, out.Contacts, 1)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		out, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{
			PersonID: f.carol.ID,
			From:     windowFrom,
			To:       windowTo,
		})
		require.NoError(t, err)
		assert.Empty(t, out.Contacts)
	})

	t.Run("unknown person is an error", func(t *testing.T) {
		_, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{
			PersonID: 99,
			From:     windowFrom,
			To:       windowTo,
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestOrchestrator_WindowIsOpenAtBothBounds(t *testing.T) {
	ctx := context.Background()
	f := newTraceFixture(t)

	f.record(t, "evt_1", f.alice.ID, 1, windowFrom.Add(time.Hour))
	f.record(t, "evt_2", f.bob.ID, 1, windowFrom) // exactly at the lower bound
	f.record(t, "evt_3", f.carol.ID, 1, windowTo) // exactly at the upper bound

	out, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{
		PersonID: f.alice.ID,
		From:     windowFrom,
		To:       windowTo,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Contacts, "boundary timestamps are excluded")
}

func TestOrchestrator_ContactsOfRoom(t *testing.T) {
	ctx := context.Background()
	f := newTraceFixture(t)

	f.record(t, "evt_1", f.alice.ID, 1, windowFrom.Add(time.Hour))
	f.record(t, "evt_2", f.bob.ID, 1, windowFrom.Add(2*time.Hour))
	// Bob moves on; the room history still counts his visit.
	f.record(t, "evt_3", f.bob.ID, 2, windowFrom.Add(3*time.Hour))

	out, err := f.svc.ContactsOfRoom(ctx, &tracing.ContactsOfRoomInput{
		RoomID: 1,
		From:   windowFrom,
		To:     windowTo,
	})
	require.NoError(t, err)
	require.Len(t, out.Contacts, 2)
	assert.Equal(t, f.alice.ID, out.Contacts[0].ID)
	assert.Equal(t, f.bob.ID, out.Contacts[1].ID)

	t.Run("events outside the window are ignored", func(t *testing.T) {
		f.record(t, "evt_4", f.carol.ID, 1, windowTo.Add(time.Hour))

		out, err := f.svc.ContactsOfRoom(ctx, &tracing.ContactsOfRoomInput{
			RoomID: 1,
			From:   windowFrom,
			To:     windowTo,
		})
		require.NoError(t, err)
		assert.Len(t, out.Contacts, 2)
	})

	t.Run("unknown room is an error", func(t *testing.T) {
		_, err := f.svc.ContactsOfRoom(ctx, &tracing.ContactsOfRoomInput{
			RoomID: 99,
			From:   windowFrom,
			To:     windowTo,
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestOrchestrator_WindowValidation(t *testing.T) {
	ctx := context.Background()
	f := newTraceFixture(t)

	_, err := f.svc.ContactsOfPerson(ctx, &tracing.ContactsOfPersonInput{PersonID: f.alice.ID})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = f.svc.ContactsOfRoom(ctx, &tracing.ContactsOfRoomInput{RoomID: 1, From: windowFrom})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
