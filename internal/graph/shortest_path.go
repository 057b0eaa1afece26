package graph

import (
	"container/heap"
	"math"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
)

// Unreachable is the sentinel weight reported when no path connects two
// vertices.
var Unreachable = math.Inf(1)

type pathItem struct {
	id       int
	distance float64
	index    int
}

type pathQueue []*pathItem

func (q pathQueue) Len() int            { return len(q) }
func (q pathQueue) Less(i, j int) bool  { return q[i].distance < q[j].distance }
func (q pathQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *pathQueue) Push(x interface{}) { item := x.(*pathItem); item.index = len(*q); *q = append(*q, item) }
func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// ShortestPath returns the minimum-total-weight path between two vertices,
// inclusive of both endpoints, computed with a binary-heap Dijkstra over the
// non-negative edge weights. An empty path means the destination is
// unreachable; that is a valid result, not an error.
func (g *Graph) ShortestPath(fromID, toID int) ([]*entities.Room, error) {
	distances, previous, err := g.dijkstra(fromID, toID)
	if err != nil {
		return nil, err
	}

	if math.IsInf(distances[toID], 1) {
		return []*entities.Room{}, nil
	}

	var path []*entities.Room
	for id := toID; ; {
		path = append([]*entities.Room{g.vertices[id]}, path...)
		if id == fromID {
			break
		}
		id = previous[id]
	}
	return path, nil
}

// ShortestPathWeight returns the summed weight of the shortest path between
// two vertices, or Unreachable when no path exists.
func (g *Graph) ShortestPathWeight(fromID, toID int) (float64, error) {
	distances, _, err := g.dijkstra(fromID, toID)
	if err != nil {
		return 0, err
	}
	return distances[toID], nil
}

func (g *Graph) dijkstra(fromID, toID int) (map[int]float64, map[int]int, error) {
	if !g.Contains(fromID) {
		return nil, nil, errors.NotFoundf("room %d is not in the graph", fromID)
	}
	if !g.Contains(toID) {
		return nil, nil, errors.NotFoundf("room %d is not in the graph", toID)
	}

	distances := make(map[int]float64, len(g.vertices))
	previous := make(map[int]int, len(g.vertices))
	for id := range g.vertices {
		distances[id] = Unreachable
	}
	distances[fromID] = 0

	queue := &pathQueue{}
	heap.Init(queue)
	heap.Push(queue, &pathItem{id: fromID, distance: 0})
	settled := make(map[int]bool, len(g.vertices))

	for queue.Len() > 0 {
		current := heap.Pop(queue).(*pathItem)
		if settled[current.id] {
			continue
		}
		settled[current.id] = true
		if current.id == toID {
			break
		}

		for _, neighborID := range g.neighbors[current.id] {
			candidate := distances[current.id] + g.weights[current.id][neighborID]
			if candidate < distances[neighborID] {
				distances[neighborID] = candidate
				previous[neighborID] = current.id
				heap.Push(queue, &pathItem{id: neighborID, distance: candidate})
			}
		}
	}

	return distances, previous, nil
}
