package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-api/internal/entities"
)

func TestRoom_Occupation(t *testing.T) {
	room := entities.NewRoom(1, "Ward", entities.RoomTypeRecovery, 2, nil)

	assert.Equal(t, 0, room.CurrentOccupation)
	assert.False(t, room.Occupied)

	room.IncreaseOccupation()
	room.RefreshOccupied()
	assert.Equal(t, 1, room.CurrentOccupation)
	assert.False(t, room.Occupied)

	room.IncreaseOccupation()
	room.RefreshOccupied()
	assert.Equal(t, 2, room.CurrentOccupation)
	assert.True(t, room.Occupied, "occupied flag set when counter reaches capacity")

	room.DecreaseOccupation()
	room.RefreshOccupied()
	assert.Equal(t, 1, room.CurrentOccupation)
	assert.False(t, room.Occupied)
}

func TestRoom_Access(t *testing.T) {
	room := entities.NewRoom(1, "Surgery", entities.RoomTypeSurgery, 3,
		[]entities.Role{entities.RoleDoctor, entities.RoleNurse})

	assert.True(t, room.HasAccess(entities.RoleDoctor))
	assert.True(t, room.HasAccess(entities.RoleNurse))
	assert.False(t, room.HasAccess(entities.RoleVisitor))

	t.Run("grant is idempotent", func(t *testing.T) {
		room.AddAccess(entities.RoleDoctor)
		assert.Equal(t, []entities.Role{entities.RoleDoctor, entities.RoleNurse}, room.Access())
	})

	t.Run("revoke removes the role", func(t *testing.T) {
		room.RemoveAccess(entities.RoleNurse)
		assert.False(t, room.HasAccess(entities.RoleNurse))
	})

	t.Run("revoking an absent role is a no-op", func(t *testing.T) {
		room.RemoveAccess(entities.RoleVisitor)
		assert.Equal(t, []entities.Role{entities.RoleDoctor}, room.Access())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		access := room.Access()
		access[0] = entities.RoleCleaner
		assert.True(t, room.HasAccess(entities.RoleDoctor))
	})
}

func TestRoom_Occupants(t *testing.T) {
	room := entities.NewRoom(1, "Waiting", entities.RoomTypeWaiting, 5, nil)
	alice := entities.NewPerson(1, "Alice", 34, entities.RoleDoctor)
	bob := entities.NewPerson(2, "Bob", 52, entities.RolePatient)

	room.AddOccupant(alice)
	room.AddOccupant(bob)
	require.Len(t, room.Occupants(), 2)

	t.Run("adding a present occupant is a no-op", func(t *testing.T) {
		room.AddOccupant(alice)
		assert.Len(t, room.Occupants(), 2)
	})

	t.Run("removal is by identity", func(t *testing.T) {
		room.RemoveOccupant(alice)
		occupants := room.Occupants()
		require.Len(t, occupants, 1)
		assert.Equal(t, bob.ID, occupants[0].ID)
	})

	t.Run("removing an absent occupant is a no-op", func(t *testing.T) {
		room.RemoveOccupant(alice)
		assert.Len(t, room.Occupants(), 1)
	})
}

func TestRoom_IsExit(t *testing.T) {
	exit := entities.NewRoom(1, "Main Exit", entities.RoomTypeExit, 10, nil)
	ward := entities.NewRoom(2, "Ward", entities.RoomTypeRecovery, 10, nil)

	assert.True(t, exit.IsExit())
	assert.False(t, ward.IsExit())
}
