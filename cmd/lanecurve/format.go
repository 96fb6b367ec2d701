package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
	"honnef.co/go/lanecurve"
)

type vec [3]float32

func newVec(v math32.Vector3) vec { return vec{v.X, v.Y, v.Z} }

func (v vec) String() string { return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2]) }

type box struct {
	Min vec `yaml:"min,flow"`
	Max vec `yaml:"max,flow"`
}

func newBox(b math32.Box3) box { return box{newVec(b.Min), newVec(b.Max)} }

type laneReport struct {
	ID           string   `yaml:"id"`
	Length       float32  `yaml:"length"`
	BezierLength float32  `yaml:"bezier_length"`
	Offset       float32  `yaml:"offset"`
	Start        vec      `yaml:"start,flow"`
	End          vec      `yaml:"end,flow"`
	Bounds       box      `yaml:"bounds"`
	Next         []string `yaml:"next,flow,omitempty"`
}

func newLaneReport(id string, c *lanecurve.Curve, next []string) laneReport {
	return laneReport{
		ID:           id,
		Length:       c.Length(),
		BezierLength: c.BezierLength(),
		Offset:       c.Offset(),
		Start:        newVec(c.StartPos()),
		End:          newVec(c.EndPos()),
		Bounds:       newBox(c.BoundingBox()),
		Next:         next,
	}
}

type sampleReport struct {
	Distance float32 `yaml:"distance"`
	Position vec     `yaml:"position,flow"`
}

type nearestReport struct {
	Lane     string  `yaml:"lane"`
	Distance float32 `yaml:"distance"`
	At       float32 `yaml:"at"`
	Position vec     `yaml:"position,flow"`
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return enc.Close()
}

func printLanes(w io.Writer, format string, lanes []laneReport) error {
	if format == "yaml" {
		return encodeYAML(w, lanes)
	}
	for _, l := range lanes {
		fmt.Fprintf(w, "%s: length %.3f (bezier %.3f), offset %.3f\n", l.ID, l.Length, l.BezierLength, l.Offset)
		fmt.Fprintf(w, "  start %s\n", l.Start)
		fmt.Fprintf(w, "  end   %s\n", l.End)
		fmt.Fprintf(w, "  box   %s %s\n", l.Bounds.Min, l.Bounds.Max)
		if len(l.Next) > 0 {
			fmt.Fprintf(w, "  next  %s\n", strings.Join(l.Next, ", "))
		}
	}
	return nil
}

func printSamples(w io.Writer, format string, samples []sampleReport) error {
	if format == "yaml" {
		return encodeYAML(w, samples)
	}
	for _, s := range samples {
		fmt.Fprintf(w, "%10.3f  %s\n", s.Distance, s.Position)
	}
	return nil
}

func printNearest(w io.Writer, format string, r nearestReport) error {
	if format == "yaml" {
		return encodeYAML(w, r)
	}
	fmt.Fprintf(w, "%s: distance %.3f at %.3f %s\n", r.Lane, r.Distance, r.At, r.Position)
	return nil
}
