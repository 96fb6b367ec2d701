package network

import (
	"errors"
	"fmt"
	"os"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
	"honnef.co/go/lanecurve"
)

// Description is the YAML form of a lane network.
type Description struct {
	// Resolution is the number of coarse steps for nearest point queries. Zero
	// means [lanecurve.DefaultRayResolution].
	Resolution int               `yaml:"resolution,omitempty"`
	Lanes      []LaneDescription `yaml:"lanes"`
}

// LaneDescription describes a single lane by the three anchors of its
// centerline.
type LaneDescription struct {
	ID      string      `yaml:"id"`
	Anchors [][]float32 `yaml:"anchors"`
	Offset  float32     `yaml:"offset,omitempty"`
	Trim    Trim        `yaml:"trim,omitempty"`
	Next    []string    `yaml:"next,omitempty"`
}

// Trim is the length cut off either end of a lane.
type Trim struct {
	Start float32 `yaml:"start,omitempty"`
	End   float32 `yaml:"end,omitempty"`
}

// Load reads a network description from a YAML file.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML network description.
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parsing network YAML: %w", err)
	}
	return &desc, nil
}

// RayResolution returns the resolution to use for nearest point queries.
func (desc *Description) RayResolution() int {
	if desc.Resolution < 1 {
		return lanecurve.DefaultRayResolution
	}
	return desc.Resolution
}

// Build constructs the network. Lanes are added in order, then linked.
// Invalid descriptions are reported as errors, never as panics.
func (desc *Description) Build() (*Network, error) {
	if desc.Resolution < 0 {
		return nil, fmt.Errorf("resolution %d is negative", desc.Resolution)
	}
	n := New(&Adjacency{})
	for i, lane := range desc.Lanes {
		c, err := lane.Curve()
		if err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
		if err := n.Add(lane.ID, c); err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
	}
	for _, lane := range desc.Lanes {
		for _, next := range lane.Next {
			if err := n.Link(lane.ID, next); err != nil {
				return nil, err
			}
		}
	}
	return n, nil
}

// Curve validates the lane and constructs its curve.
func (lane *LaneDescription) Curve() (*lanecurve.Curve, error) {
	if lane.ID == "" {
		return nil, errors.New("missing id")
	}
	if len(lane.Anchors) != 3 {
		return nil, fmt.Errorf("%q: got %d anchors, want 3", lane.ID, len(lane.Anchors))
	}
	var q lanecurve.QuadBez
	for i, a := range lane.Anchors {
		if len(a) != 3 {
			return nil, fmt.Errorf("%q: anchor %d has %d coordinates, want 3", lane.ID, i, len(a))
		}
	}
	q.P0 = vec3(lane.Anchors[0])
	q.P1 = vec3(lane.Anchors[1])
	q.P2 = vec3(lane.Anchors[2])
	if q.IsNaN() || q.IsInf() {
		return nil, fmt.Errorf("%q: anchors must be finite", lane.ID)
	}
	if !finite(lane.Offset) || !finite(lane.Trim.Start) || !finite(lane.Trim.End) {
		return nil, fmt.Errorf("%q: offset and trims must be finite", lane.ID)
	}

	c := lanecurve.NewFromCubic(q.Raise())
	if lane.Trim.Start < 0 || lane.Trim.End < 0 {
		return nil, fmt.Errorf("%q: negative trim", lane.ID)
	}
	if l := c.BezierLength(); lane.Trim.Start+lane.Trim.End > l {
		return nil, fmt.Errorf("%q: trims of %g and %g exceed the length %g", lane.ID, lane.Trim.Start, lane.Trim.End, l)
	}
	return c.AddStartDistance(lane.Trim.Start).AddEndDistance(lane.Trim.End).SetOffset(lane.Offset), nil
}

func vec3(a []float32) math32.Vector3 { return math32.Vec3(a[0], a[1], a[2]) }

func finite(x float32) bool { return !math32.IsNaN(x) && !math32.IsInf(x, 0) }
