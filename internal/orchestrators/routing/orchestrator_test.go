package routing_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/graph"
	"github.com/facilitydesk/facility-api/internal/orchestrators/routing"
)

// buildEvacGraph builds a facility with two exits, one of them unreachable
// from the ward:
//
//	1 Ward -(2)-> 2 Hall -(1)-> 3 Main Exit
//	1 Ward -(5)-> 3 Main Exit
//	4 Fire Exit (isolated)
func buildEvacGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	require.NoError(t, g.AddVertex(entities.NewRoom(1, "Ward", entities.RoomTypeRecovery, 4, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(2, "Hall", entities.RoomTypeCommon, 20, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(3, "Main Exit", entities.RoomTypeExit, 50, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(4, "Fire Exit", entities.RoomTypeExit, 50, nil)))

	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 5))
	// The fire exit only has an outbound arc, so it shows up in the edge
	// scan but cannot be reached from the ward.
	require.NoError(t, g.AddEdge(4, 2, 1))
	return g
}

func newRouting(t *testing.T) routing.Service {
	t.Helper()

	svc, err := routing.NewOrchestrator(&routing.Config{Graph: buildEvacGraph(t)})
	require.NoError(t, err)
	return svc
}

func TestNewOrchestrator_Validation(t *testing.T) {
	_, err := routing.NewOrchestrator(&routing.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOrchestrator_ListExits(t *testing.T) {
	ctx := context.Background()
	svc := newRouting(t)

	out, err := svc.ListExits(ctx, &routing.ListExitsInput{})
	require.NoError(t, err)
	require.Len(t, out.Exits, 2)
	assert.Equal(t, 3, out.Exits[0].ID)
	assert.Equal(t, 4, out.Exits[1].ID)
}

func TestOrchestrator_ListExits_Deduplicates(t *testing.T) {
	ctx := context.Background()

	g := graph.New()
	require.NoError(t, g.AddVertex(entities.NewRoom(1, "Hall", entities.RoomTypeCommon, 10, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(2, "Hall B", entities.RoomTypeCommon, 10, nil)))
	require.NoError(t, g.AddVertex(entities.NewRoom(3, "Exit", entities.RoomTypeExit, 50, nil)))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 1, 1))

	svc, err := routing.NewOrchestrator(&routing.Config{Graph: g})
	require.NoError(t, err)

	out, err := svc.ListExits(ctx, &routing.ListExitsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Exits, 1)
}

func TestOrchestrator_RouteToExits(t *testing.T) {
	ctx := context.Background()
	svc := newRouting(t)

	out, err := svc.RouteToExits(ctx, &routing.RouteToExitsInput{StartRoomID: 1})
	require.NoError(t, err)
	require.Len(t, out.Routes, 2)

	t.Run("reachable exit gets the cheapest path", func(t *testing.T) {
		route := out.Routes[0]
		assert.Equal(t, 3, route.Exit.ID)
		assert.Equal(t, 3.0, route.Weight, "route through the hall beats the direct corridor")

		var ids []int
		for _, room := range route.Path {
			ids = append(ids, room.ID)
		}
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("unreachable exit reports the sentinel, not an error", func(t *testing.T) {
		route := out.Routes[1]
		assert.Equal(t, 4, route.Exit.ID)
		assert.True(t, math.IsInf(route.Weight, 1))
		assert.Empty(t, route.Path)
	})
}

func TestOrchestrator_RouteToExits_UnknownStart(t *testing.T) {
	ctx := context.Background()
	svc := newRouting(t)

	_, err := svc.RouteToExits(ctx, &routing.RouteToExitsInput{StartRoomID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestOrchestrator_RouteToExits_FromExit(t *testing.T) {
	ctx := context.Background()
	svc := newRouting(t)

	out, err := svc.RouteToExits(ctx, &routing.RouteToExitsInput{StartRoomID: 3})
	require.NoError(t, err)

	// The start being an exit itself yields a zero-cost single-vertex route.
	route := out.Routes[0]
	assert.Equal(t, 3, route.Exit.ID)
	assert.Equal(t, 0.0, route.Weight)
	require.Len(t, route.Path, 1)
	assert.Equal(t, 3, route.Path[0].ID)
}
