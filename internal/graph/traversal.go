package graph

import (
	"iter"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
)

// BreadthFirst returns a lazy sequence of the rooms reachable from the
// start vertex in FIFO frontier order. Each reachable room is yielded
// exactly once; neighbor order follows edge insertion. The sequence is
// restartable: every range over it traverses from scratch.
func (g *Graph) BreadthFirst(startID int) (iter.Seq[*entities.Room], error) {
	if !g.Contains(startID) {
		return nil, errors.NotFoundf("room %d is not in the graph", startID)
	}

	return func(yield func(*entities.Room) bool) {
		visited := map[int]bool{startID: true}
		frontier := []int{startID}

		for len(frontier) > 0 {
			id := frontier[0]
			frontier = frontier[1:]

			if !yield(g.vertices[id]) {
				return
			}
			for _, neighborID := range g.neighbors[id] {
				if !visited[neighborID] {
					visited[neighborID] = true
					frontier = append(frontier, neighborID)
				}
			}
		}
	}, nil
}

// DepthFirst returns a lazy sequence of the rooms reachable from the start
// vertex in LIFO order. Each reachable room is yielded exactly once. The
// sequence is restartable per range.
func (g *Graph) DepthFirst(startID int) (iter.Seq[*entities.Room], error) {
	if !g.Contains(startID) {
		return nil, errors.NotFoundf("room %d is not in the graph", startID)
	}

	return func(yield func(*entities.Room) bool) {
		visited := make(map[int]bool)
		stack := []int{startID}

		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if visited[id] {
				continue
			}
			visited[id] = true

			if !yield(g.vertices[id]) {
				return
			}
			// Push in reverse so the first-inserted neighbor is explored first.
			for i := len(g.neighbors[id]) - 1; i >= 0; i-- {
				if !visited[g.neighbors[id][i]] {
					stack = append(stack, g.neighbors[id][i])
				}
			}
		}
	}, nil
}
