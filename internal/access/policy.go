// Package access decides whether a role may enter a room.
//
// The policy is a pure filter layered over the graph's adjacency: the graph
// carries no notion of permissions, so traversal and authorization stay
// independently testable.
package access

import (
	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/graph"
)

// Policy answers role-based room access questions against the facility graph
type Policy struct {
	graph *graph.Graph
}

// NewPolicy creates a policy over the given graph
func NewPolicy(g *graph.Graph) (*Policy, error) {
	if g == nil {
		return nil, errors.InvalidArgument("graph is required")
	}
	return &Policy{graph: g}, nil
}

// HasPermission reports whether the role is in the room's access list
func (p *Policy) HasPermission(role entities.Role, room *entities.Room) bool {
	if room == nil {
		return false
	}
	return room.HasAccess(role)
}

// AccessibleNeighbors returns the neighboring rooms the role may enter,
// deduplicated, in first-discovery order. The view is recomputed on every
// call since access lists can change between calls.
func (p *Policy) AccessibleNeighbors(roomID int, role entities.Role) ([]*entities.Room, error) {
	neighbors, err := p.graph.Neighbors(roomID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(neighbors))
	accessible := make([]*entities.Room, 0, len(neighbors))
	for _, neighbor := range neighbors {
		if seen[neighbor.ID] {
			continue
		}
		seen[neighbor.ID] = true
		if p.HasPermission(role, neighbor) {
			accessible = append(accessible, neighbor)
		}
	}
	return accessible, nil
}
