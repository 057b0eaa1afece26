package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-api/internal/access"
	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/graph"
)

func TestNewPolicy(t *testing.T) {
	_, err := access.NewPolicy(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	policy, err := access.NewPolicy(graph.New())
	require.NoError(t, err)
	assert.NotNil(t, policy)
}

func TestPolicy_HasPermission(t *testing.T) {
	policy, err := access.NewPolicy(graph.New())
	require.NoError(t, err)

	surgery := entities.NewRoom(1, "Surgery", entities.RoomTypeSurgery, 2,
		[]entities.Role{entities.RoleDoctor, entities.RoleNurse})

	assert.True(t, policy.HasPermission(entities.RoleDoctor, surgery))
	assert.False(t, policy.HasPermission(entities.RoleVisitor, surgery))
	assert.False(t, policy.HasPermission(entities.RoleDoctor, nil))
}

func TestPolicy_AccessibleNeighbors(t *testing.T) {
	g := graph.New()

	lobby := entities.NewRoom(1, "Lobby", entities.RoomTypeWaiting, 10,
		[]entities.Role{entities.RoleVisitor, entities.RoleDoctor})
	surgery := entities.NewRoom(2, "Surgery", entities.RoomTypeSurgery, 2,
		[]entities.Role{entities.RoleDoctor})
	ward := entities.NewRoom(3, "Ward", entities.RoomTypeRecovery, 4,
		[]entities.Role{entities.RoleDoctor, entities.RoleVisitor})

	require.NoError(t, g.AddVertex(lobby))
	require.NoError(t, g.AddVertex(surgery))
	require.NoError(t, g.AddVertex(ward))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))

	policy, err := access.NewPolicy(g)
	require.NoError(t, err)

	t.Run("doctor sees both neighbors", func(t *testing.T) {
		rooms, err := policy.AccessibleNeighbors(1, entities.RoleDoctor)
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, 2, rooms[0].ID)
		assert.Equal(t, 3, rooms[1].ID)
	})

	t.Run("visitor is filtered out of surgery", func(t *testing.T) {
		rooms, err := policy.AccessibleNeighbors(1, entities.RoleVisitor)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, 3, rooms[0].ID)
	})

	t.Run("no accessible neighbors is a valid empty result", func(t *testing.T) {
		rooms, err := policy.AccessibleNeighbors(1, entities.RoleCleaner)
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("view reflects later access changes", func(t *testing.T) {
		surgery.AddAccess(entities.RoleVisitor)
		defer surgery.RemoveAccess(entities.RoleVisitor)

		rooms, err := policy.AccessibleNeighbors(1, entities.RoleVisitor)
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})

	t.Run("unknown room is an error", func(t *testing.T) {
		_, err := policy.AccessibleNeighbors(99, entities.RoleDoctor)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
