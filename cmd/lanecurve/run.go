package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
	"honnef.co/go/lanecurve"
	"honnef.co/go/lanecurve/network"
)

// loadNetwork loads the description and builds the network it describes.
func loadNetwork(path string) (*network.Description, *network.Network, error) {
	desc, err := network.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading network: %w", err)
	}
	n, err := desc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building network %s: %w", path, err)
	}
	slog.Info("loaded network", "file", path, "lanes", n.Len())
	return desc, n, nil
}

func runInspect(w io.Writer, opts *options, ids []string) error {
	_, n, err := loadNetwork(opts.file)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		ids = n.IDs()
	}

	lanes := make([]laneReport, 0, len(ids))
	for _, id := range ids {
		c, err := n.Curve(id)
		if err != nil {
			return err
		}
		next, err := n.Next(id)
		if err != nil {
			return err
		}
		lanes = append(lanes, newLaneReport(id, c, next))
	}
	return printLanes(w, opts.output, lanes)
}

// checkStep rejects steps that would sample length more than
// [lanecurve.MaxSamples] times.
func checkStep(step, length float32) error {
	if step <= 0 {
		return fmt.Errorf("step %g isn't positive", step)
	}
	if length/step > lanecurve.MaxSamples {
		return fmt.Errorf("step %g is too small for a length of %g, use at least %g",
			step, length, length/lanecurve.MaxSamples)
	}
	return nil
}

func runSample(w io.Writer, opts *options, id string, step float32) error {
	_, n, err := loadNetwork(opts.file)
	if err != nil {
		return err
	}
	c, err := n.Curve(id)
	if err != nil {
		return err
	}
	if err := checkStep(step, c.Length()); err != nil {
		return err
	}

	var samples []sampleReport
	for d, p := range c.Samples(step) {
		samples = append(samples, sampleReport{Distance: d, Position: newVec(p)})
	}
	slog.Debug("sampled lane", "id", id, "step", step, "samples", len(samples))
	return printSamples(w, opts.output, samples)
}

func runChain(w io.Writer, opts *options, ids []string, step float32) error {
	_, n, err := loadNetwork(opts.file)
	if err != nil {
		return err
	}
	ch, err := n.Chain(ids...)
	if err != nil {
		return err
	}

	length := ch.Length()
	if err := checkStep(step, length); err != nil {
		return err
	}
	var samples []sampleReport
	for i := 0; ; i++ {
		d := float32(i) * step
		if i > 0 && length-d < lanecurve.ArclenTolerance {
			break
		}
		samples = append(samples, sampleReport{Distance: d, Position: newVec(ch.EvaluatePosition(d))})
	}
	if length > 0 {
		samples = append(samples, sampleReport{Distance: length, Position: newVec(ch.EvaluatePosition(length))})
	}
	slog.Debug("sampled chain", "lanes", len(ids), "length", length, "samples", len(samples))
	return printSamples(w, opts.output, samples)
}

func runNearest(w io.Writer, opts *options, ids []string, origin, dir string, resolution int) error {
	o, err := parseVec(origin)
	if err != nil {
		return fmt.Errorf("parsing origin: %w", err)
	}
	d, err := parseVec(dir)
	if err != nil {
		return fmt.Errorf("parsing direction: %w", err)
	}
	desc, n, err := loadNetwork(opts.file)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		ids = n.IDs()
	}
	if len(ids) == 0 {
		return errors.New("network has no lanes")
	}
	if resolution < 1 {
		resolution = desc.RayResolution()
	}

	ray := math32.Ray{Origin: o, Dir: d}
	var best nearestReport
	for i, id := range ids {
		c, err := n.Curve(id)
		if err != nil {
			return err
		}
		dist, at := c.NearestToRay(ray, resolution)
		slog.Debug("nearest point", "id", id, "distance", dist, "at", at)
		if i == 0 || dist < best.Distance {
			best = nearestReport{
				Lane:     id,
				Distance: dist,
				At:       at,
				Position: newVec(c.EvaluatePosition(at)),
			}
		}
	}
	return printNearest(w, opts.output, best)
}

// parseVec parses a vector written as x,y,z.
func parseVec(s string) (math32.Vector3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return math32.Vector3{}, fmt.Errorf("%q has %d components, want 3", s, len(fields))
	}
	var xyz [3]float32
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return math32.Vector3{}, err
		}
		xyz[i] = float32(x)
	}
	return math32.Vec3(xyz[0], xyz[1], xyz[2]), nil
}
