// Package graph provides a weighted directed graph with Dijkstra shortest
// paths and cycle detection.
//
// Node identifiers are integers in [0, MaxNodeID]. Visited and settled node
// sets are tracked with roaring bitmaps, which stay compact for both
// dense and sparse id spaces.
package graph

import (
	"cmp"
	"errors"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/algokit/queue"
)

// MaxNodeID is the largest valid node identifier, bounded by the 32-bit
// bitmap key space.
const MaxNodeID = math.MaxUint32

var (
	// ErrNegativeWeight is returned for negative edge weights; Dijkstra
	// requires non-negative weights.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
	// ErrInvalidNode is returned for node identifiers outside
	// [0, MaxNodeID].
	ErrInvalidNode = errors.New("graph: node id out of range")
)

// Edge is an outgoing edge.
type Edge struct {
	To     int
	Weight float64
}

// Path is the result of a shortest-path query.
type Path struct {
	// Nodes lists the path from source to target, inclusive.
	Nodes []int
	// Distance is the total weight along Nodes.
	Distance float64
}

// Graph is a weighted directed graph.
//
// Not safe for concurrent use.
type Graph struct {
	adj   map[int][]Edge
	nodes *roaring.Bitmap
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adj:   make(map[int][]Edge),
		nodes: roaring.New(),
	}
}

// AddNode registers a node without edges. Adding an existing node is a
// no-op.
func (g *Graph) AddNode(id int) error {
	if id < 0 || uint64(id) > MaxNodeID {
		return ErrInvalidNode
	}
	g.nodes.Add(uint32(id))
	return nil
}

// AddEdge adds a directed edge. Both endpoints are registered as nodes.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if from < 0 || to < 0 || uint64(from) > MaxNodeID || uint64(to) > MaxNodeID {
		return ErrInvalidNode
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.nodes.Add(uint32(from))
	g.nodes.Add(uint32(to))
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return int(g.nodes.GetCardinality())
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && uint64(id) <= MaxNodeID && g.nodes.Contains(uint32(id))
}

// Nodes returns all node ids in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, g.nodes.GetCardinality())
	it := g.nodes.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Neighbors returns the outgoing edges of id. The returned slice must not
// be modified.
func (g *Graph) Neighbors(id int) []Edge {
	return g.adj[id]
}

type pqItem struct {
	node int
	dist float64
}

// ShortestPath runs Dijkstra's algorithm from source to target and
// returns the minimum-weight path. ok is false when either endpoint is
// unknown or the target is unreachable.
func (g *Graph) ShortestPath(source, target int) (*Path, bool) {
	if !g.HasNode(source) || !g.HasNode(target) {
		return nil, false
	}

	dist := map[int]float64{source: 0}
	prev := make(map[int]int)
	settled := roaring.New()

	pq := queue.New(func(a, b pqItem) int { return cmp.Compare(a.dist, b.dist) })
	pq.Enqueue(pqItem{node: source, dist: 0})

	for pq.Len() > 0 {
		item, _ := pq.Dequeue()
		if settled.Contains(uint32(item.node)) {
			continue // stale queue entry
		}
		settled.Add(uint32(item.node))

		if item.node == target {
			break
		}

		for _, e := range g.adj[item.node] {
			if settled.Contains(uint32(e.To)) {
				continue
			}
			alt := item.dist + e.Weight
			if cur, ok := dist[e.To]; !ok || alt < cur {
				dist[e.To] = alt
				prev[e.To] = item.node
				pq.Enqueue(pqItem{node: e.To, dist: alt})
			}
		}
	}

	total, ok := dist[target]
	if !ok {
		return nil, false
	}

	nodes := []int{target}
	for at := target; at != source; {
		at = prev[at]
		nodes = append(nodes, at)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return &Path{Nodes: nodes, Distance: total}, true
}

// HasCycle reports whether the graph contains a directed cycle. DFS with
// a recursion-stack set; a back-edge into the stack signals a cycle.
func (g *Graph) HasCycle() bool {
	visited := roaring.New()
	onStack := roaring.New()

	var visit func(node int) bool
	visit = func(node int) bool {
		visited.Add(uint32(node))
		onStack.Add(uint32(node))
		defer onStack.Remove(uint32(node))

		for _, e := range g.adj[node] {
			if onStack.Contains(uint32(e.To)) {
				return true
			}
			if !visited.Contains(uint32(e.To)) && visit(e.To) {
				return true
			}
		}
		return false
	}

	it := g.nodes.Iterator()
	for it.HasNext() {
		node := int(it.Next())
		if !visited.Contains(uint32(node)) && visit(node) {
			return true
		}
	}
	return false
}
