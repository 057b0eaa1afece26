// Package routing helps an occupant find the nearest of possibly several
// designated exits.
package routing

//go:generate mockgen -destination=mock/mock_service.go -package=routingmock github.com/facilitydesk/facility-api/internal/orchestrators/routing Service

import (
	"context"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/graph"
)

// Service defines the interface for exit routing queries
type Service interface {
	// ListExits returns the distinct set of exit rooms
	ListExits(ctx context.Context, input *ListExitsInput) (*ListExitsOutput, error)

	// RouteToExits computes the shortest path and cost from a start room to
	// every exit
	RouteToExits(ctx context.Context, input *RouteToExitsInput) (*RouteToExitsOutput, error)
}

// Config holds the dependencies for the routing orchestrator
type Config struct {
	Graph *graph.Graph
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Graph == nil {
		return errors.NewValidationBuilder().RequiredField("Graph").Build()
	}
	return nil
}

// ListExitsInput defines the request for exit enumeration
type ListExitsInput struct{}

// ListExitsOutput defines the response for exit enumeration
type ListExitsOutput struct {
	Exits []*entities.Room
}

// RouteToExitsInput defines the request for per-exit routing
type RouteToExitsInput struct {
	StartRoomID int
}

// ExitRoute is the path to one exit. Unreachable exits carry an empty path
// and the Unreachable weight sentinel; callers must not treat that as a
// fatal error.
type ExitRoute struct {
	Exit   *entities.Room
	Path   []*entities.Room
	Weight float64
}

// RouteToExitsOutput defines the response for per-exit routing. Routes are
// reported in exit discovery order; ranking by distance is left to the
// caller.
type RouteToExitsOutput struct {
	Routes []ExitRoute
}

type orchestrator struct {
	graph *graph.Graph
}

// NewOrchestrator creates a new routing orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{graph: cfg.Graph}, nil
}

// ListExits scans the graph's edges and collects every endpoint of type
// EXIT, deduplicated, in discovery order.
func (o *orchestrator) ListExits(ctx context.Context, input *ListExitsInput) (*ListExitsOutput, error) {
	var exits []*entities.Room
	seen := make(map[int]bool)

	for _, edge := range o.graph.Edges() {
		for _, room := range []*entities.Room{edge.From, edge.To} {
			if room.IsExit() && !seen[room.ID] {
				seen[room.ID] = true
				exits = append(exits, room)
			}
		}
	}

	return &ListExitsOutput{Exits: exits}, nil
}

// RouteToExits computes, for every exit, the shortest weighted path from
// the start room and its total cost.
func (o *orchestrator) RouteToExits(ctx context.Context, input *RouteToExitsInput) (*RouteToExitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.graph.Contains(input.StartRoomID) {
		return nil, errors.NotFoundf("room %d not found", input.StartRoomID)
	}

	exits, err := o.ListExits(ctx, &ListExitsInput{})
	if err != nil {
		return nil, err
	}

	routes := make([]ExitRoute, 0, len(exits.Exits))
	for _, exit := range exits.Exits {
		path, err := o.graph.ShortestPath(input.StartRoomID, exit.ID)
		if err != nil {
			return nil, err
		}
		weight, err := o.graph.ShortestPathWeight(input.StartRoomID, exit.ID)
		if err != nil {
			return nil, err
		}
		routes = append(routes, ExitRoute{
			Exit:   exit,
			Path:   path,
			Weight: weight,
		})
	}

	return &RouteToExitsOutput{Routes: routes}, nil
}
