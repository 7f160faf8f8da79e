// Package route builds a hop-count graph over every room exit in the dataset
// and answers shortest-path queries. The graph spans all areas and levels at
// once, independent of whatever area view is currently displayed.
package route

import (
	"github.com/zyedidia/generic/mapset"

	"mudmap/pkg/mapdata"
)

// Graph is the global routing graph: one node per room id, one unit-weight
// edge per exit and special exit. Edge targets absent from the dataset become
// nodes with no outgoing edges, so they can terminate a path but never extend
// one.
type Graph struct {
	edges map[int][]int
}

// Build constructs the graph from the canonical index.
func Build(idx *mapdata.AreaIndex) *Graph {
	g := &Graph{edges: make(map[int][]int)}
	idx.EachRoom(g.addRoom)
	return g
}

func (g *Graph) addRoom(room *mapdata.Room) {
	if _, ok := g.edges[room.ID]; !ok {
		g.edges[room.ID] = nil
	}
	for _, target := range room.Exits {
		g.addEdge(room.ID, target)
	}
	for _, target := range room.SpecialExits {
		g.addEdge(room.ID, target)
	}
}

func (g *Graph) addEdge(from, to int) {
	g.edges[from] = append(g.edges[from], to)
	if _, ok := g.edges[to]; !ok {
		g.edges[to] = nil
	}
}

// ShortestPath returns the fewest-hops route between two rooms as an ordered
// id sequence including both endpoints. ShortestPath(a, a) is [a]. The second
// return value is false when no route exists; a disconnected graph is a
// normal, expected result, not an error.
func (g *Graph) ShortestPath(from, to int) ([]int, bool) {
	if _, ok := g.edges[from]; !ok {
		return nil, false
	}
	if _, ok := g.edges[to]; !ok {
		return nil, false
	}
	if from == to {
		return []int{from}, true
	}

	// Plain BFS: all edges weigh one hop.
	visited := mapset.New[int]()
	visited.Put(from)
	parent := make(map[int]int)
	queue := []int{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.edges[current] {
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = current
			if next == to {
				return assemblePath(parent, from, to), true
			}
			queue = append(queue, next)
		}
	}

	return nil, false
}

func assemblePath(parent map[int]int, from, to int) []int {
	var reversed []int
	for at := to; ; at = parent[at] {
		reversed = append(reversed, at)
		if at == from {
			break
		}
	}
	path := make([]int, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
