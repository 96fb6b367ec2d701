package network

import "slices"

// Graph records which lane may follow which. Vertices are lane IDs.
type Graph interface {
	// AddDirectedEdge adds an edge from source to target. Adding an edge that
	// already exists has no effect.
	AddDirectedEdge(source, target string)
	// OutNeighbors returns the targets of all edges leaving id, in the order
	// they were added.
	OutNeighbors(id string) []string
}

var _ Graph = (*Adjacency)(nil)

// Adjacency is an in-memory [Graph] backed by adjacency lists. The zero value
// is an empty graph ready to use.
type Adjacency struct {
	out map[string][]string
}

func (a *Adjacency) AddDirectedEdge(source, target string) {
	if a.out == nil {
		a.out = make(map[string][]string)
	}
	if slices.Contains(a.out[source], target) {
		return
	}
	a.out[source] = append(a.out[source], target)
}

func (a *Adjacency) OutNeighbors(id string) []string {
	return slices.Clone(a.out[id])
}

// HasEdge reports whether there is an edge from source to target.
func (a *Adjacency) HasEdge(source, target string) bool {
	return slices.Contains(a.out[source], target)
}

// Len returns the number of edges.
func (a *Adjacency) Len() int {
	var n int
	for _, targets := range a.out {
		n += len(targets)
	}
	return n
}
