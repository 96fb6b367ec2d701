// Package network stores lane curves by ID and links them into the sequences
// that vehicles follow.
//
// The lanecurve package only knows single curves. This package adds the
// surroundings needed to use them for a road layout: a registry of named
// curves, a [Graph] of which lane may follow which, [Chain] for traversing
// several linked lanes as one, and YAML descriptions of whole networks.
package network

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"honnef.co/go/lanecurve"
)

var (
	ErrUnknownCurve   = errors.New("unknown curve")
	ErrDuplicateCurve = errors.New("duplicate curve")
	ErrNotLinked      = errors.New("curves are not linked")
	ErrInvalidCurve   = errors.New("curve has non-finite control points")
)

// JoinTolerance is the largest gap between the end of a lane and the start of
// a lane linked to it that isn't reported as a warning.
const JoinTolerance = 0.1

// Network is a set of lane curves, keyed by ID, and the links between them.
// It is not safe for concurrent mutation.
type Network struct {
	curves map[string]*lanecurve.Curve
	ids    []string
	graph  Graph
}

// New returns an empty network that records links in g. If g is nil, an
// [Adjacency] is used.
func New(g Graph) *Network {
	if g == nil {
		g = &Adjacency{}
	}
	return &Network{
		curves: make(map[string]*lanecurve.Curve),
		graph:  g,
	}
}

// Add adds a curve under id. The network takes ownership of the curve.
func (n *Network) Add(id string, c *lanecurve.Curve) error {
	if bez := c.Bezier(); bez.IsNaN() || bez.IsInf() {
		return fmt.Errorf("adding %q: %w", id, ErrInvalidCurve)
	}
	if _, ok := n.curves[id]; ok {
		return fmt.Errorf("adding %q: %w", id, ErrDuplicateCurve)
	}
	n.curves[id] = c
	n.ids = append(n.ids, id)
	slog.Debug("network.Add", "id", id, "length", c.Length())
	return nil
}

// Curve returns the curve stored under id.
func (n *Network) Curve(id string) (*lanecurve.Curve, error) {
	c, ok := n.curves[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownCurve)
	}
	return c, nil
}

// IDs returns the IDs of all curves in the order they were added.
func (n *Network) IDs() []string { return slices.Clone(n.ids) }

// Len returns the number of curves.
func (n *Network) Len() int { return len(n.ids) }

// Graph returns the graph that links are recorded in.
func (n *Network) Graph() Graph { return n.graph }

// Link records that the lane to may follow the lane from. Linking lanes whose
// ends don't meet is allowed but logged.
func (n *Network) Link(from, to string) error {
	a, err := n.Curve(from)
	if err != nil {
		return fmt.Errorf("linking %q to %q: %w", from, to, err)
	}
	b, err := n.Curve(to)
	if err != nil {
		return fmt.Errorf("linking %q to %q: %w", from, to, err)
	}
	if gap := a.EndPos().Sub(b.StartPos()).Length(); gap > JoinTolerance {
		slog.Warn("linked lanes don't meet", "from", from, "to", to, "gap", gap)
	}
	n.graph.AddDirectedEdge(from, to)
	return nil
}

// Next returns the IDs of the lanes that may follow id.
func (n *Network) Next(id string) ([]string, error) {
	if _, err := n.Curve(id); err != nil {
		return nil, err
	}
	return n.graph.OutNeighbors(id), nil
}

// Chain returns the chain of the given lanes. Each lane must be linked to the
// one after it.
func (n *Network) Chain(ids ...string) (*Chain, error) {
	if len(ids) == 0 {
		return nil, errors.New("chain needs at least one curve")
	}
	curves := make([]*lanecurve.Curve, len(ids))
	for i, id := range ids {
		c, err := n.Curve(id)
		if err != nil {
			return nil, fmt.Errorf("building chain: %w", err)
		}
		if i > 0 && !slices.Contains(n.graph.OutNeighbors(ids[i-1]), id) {
			return nil, fmt.Errorf("building chain: %q to %q: %w", ids[i-1], id, ErrNotLinked)
		}
		curves[i] = c
	}
	return NewChain(curves...), nil
}
