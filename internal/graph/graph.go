// Package graph maintains the weighted adjacency relation over rooms and
// answers structural queries: point lookups, traversal, and shortest paths.
//
// The graph is directed; the loader inserts undirected facility edges in
// both directions. Permissions are not modeled here — the access package
// layers role filtering over adjacency queries.
package graph

import (
	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
)

// Graph is a weighted directed graph with rooms as vertices, identified by
// room id. It is built at facility load time and read-mostly thereafter.
// It is not safe for concurrent mutation.
type Graph struct {
	vertices  map[int]*entities.Room
	order     []int
	neighbors map[int][]int
	weights   map[int]map[int]float64
}

// Edge is one directed arc of the graph
type Edge struct {
	From   *entities.Room
	To     *entities.Room
	Weight float64
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		vertices:  make(map[int]*entities.Room),
		neighbors: make(map[int][]int),
		weights:   make(map[int]map[int]float64),
	}
}

// AddVertex registers a room. Registering a second room with an id already
// present is rejected; the graph never silently merges vertices.
func (g *Graph) AddVertex(room *entities.Room) error {
	if room == nil {
		return errors.InvalidArgument("room is required")
	}
	if _, exists := g.vertices[room.ID]; exists {
		return errors.AlreadyExistsf("room %d is already registered", room.ID)
	}

	g.vertices[room.ID] = room
	g.order = append(g.order, room.ID)
	return nil
}

// Vertex returns the room registered under the given id
func (g *Graph) Vertex(id int) (*entities.Room, error) {
	room, ok := g.vertices[id]
	if !ok {
		return nil, errors.NotFoundf("room %d is not in the graph", id)
	}
	return room, nil
}

// Contains reports whether a vertex with the given id is registered
func (g *Graph) Contains(id int) bool {
	_, ok := g.vertices[id]
	return ok
}

// Order returns the number of registered vertices
func (g *Graph) Order() int {
	return len(g.vertices)
}

// Vertices returns all rooms in registration order
func (g *Graph) Vertices() []*entities.Room {
	out := make([]*entities.Room, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}
	return out
}

// AddEdge inserts a directed arc from one room to another with the given
// non-negative weight. Bidirectional connectivity requires a second call
// with the arguments swapped. Re-adding an existing arc updates its weight.
func (g *Graph) AddEdge(fromID, toID int, weight float64) error {
	if weight < 0 {
		return errors.InvalidArgumentf("edge weight must be non-negative, got %v", weight)
	}
	if !g.Contains(fromID) {
		return errors.NotFoundf("room %d is not in the graph", fromID)
	}
	if !g.Contains(toID) {
		return errors.NotFoundf("room %d is not in the graph", toID)
	}

	if g.weights[fromID] == nil {
		g.weights[fromID] = make(map[int]float64)
	}
	if _, exists := g.weights[fromID][toID]; !exists {
		g.neighbors[fromID] = append(g.neighbors[fromID], toID)
	}
	g.weights[fromID][toID] = weight
	return nil
}

// EdgeExists reports whether a directed arc exists between two vertices
func (g *Graph) EdgeExists(fromID, toID int) bool {
	_, ok := g.weights[fromID][toID]
	return ok
}

// Weight returns the weight of the arc between two vertices. Querying an
// arc that does not exist is an error.
func (g *Graph) Weight(fromID, toID int) (float64, error) {
	if !g.Contains(fromID) {
		return 0, errors.NotFoundf("room %d is not in the graph", fromID)
	}
	if !g.Contains(toID) {
		return 0, errors.NotFoundf("room %d is not in the graph", toID)
	}
	w, ok := g.weights[fromID][toID]
	if !ok {
		return 0, errors.NotFoundf("no edge between room %d and room %d", fromID, toID)
	}
	return w, nil
}

// Neighbors returns the rooms directly reachable from a vertex, in edge
// insertion order
func (g *Graph) Neighbors(id int) ([]*entities.Room, error) {
	if !g.Contains(id) {
		return nil, errors.NotFoundf("room %d is not in the graph", id)
	}
	out := make([]*entities.Room, 0, len(g.neighbors[id]))
	for _, neighborID := range g.neighbors[id] {
		out = append(out, g.vertices[neighborID])
	}
	return out, nil
}

// Edges returns every directed arc in the graph, ordered by vertex
// registration and edge insertion
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, fromID := range g.order {
		for _, toID := range g.neighbors[fromID] {
			out = append(out, Edge{
				From:   g.vertices[fromID],
				To:     g.vertices[toID],
				Weight: g.weights[fromID][toID],
			})
		}
	}
	return out
}
