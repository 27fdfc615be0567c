// Package config loads robot definitions (D-H tables, tool and initial
// joints) from YAML and builds kinematic chains from them.
//
// A definition looks like:
//
//	name: scara
//	units: degrees          # degrees | radians (default radians)
//	capacity: 7             # optional, defaults to dh.MaxLinks
//	links:
//	  - {theta: 0, d: 400, a: 325, alpha: 0}
//	tool:
//	  offset: [0, 0, 0]     # dx, dy, dz
//	  z_offset: 50
//	joints: [0]             # optional, in units
//
// Lengths are used as written; only angles are converted.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dhkin/dh"
	"github.com/katalvlaran/dhkin/rotation"
)

// MaxFileSize caps the size of a robot file accepted by Load.
const MaxFileSize = 1 << 20

// ErrInvalidConfig is returned for a robot definition that cannot be decoded
// or fails validation.
var ErrInvalidConfig = errors.New("config: invalid robot definition")

// Units names the angle unit used throughout a robot file.
type Units string

// Supported angle units.
const (
	Radians Units = "radians"
	Degrees Units = "degrees"
)

// Robot is a decoded robot definition. Angles are in Units.
type Robot struct {
	Name     string     `yaml:"name"`
	Units    Units      `yaml:"units"`
	Capacity int        `yaml:"capacity"`
	Links    []LinkSpec `yaml:"links"`
	Tool     ToolSpec   `yaml:"tool"`
	Joints   []float64  `yaml:"joints"`
}

// LinkSpec is one D-H table row.
type LinkSpec struct {
	Theta float64 `yaml:"theta"`
	D     float64 `yaml:"d"`
	A     float64 `yaml:"a"`
	Alpha float64 `yaml:"alpha"`
}

// ToolSpec positions the tool tip relative to the last link frame.
type ToolSpec struct {
	Offset  []float64 `yaml:"offset"` // dx, dy, dz
	ZOffset float64   `yaml:"z_offset"`
}

// Load reads and parses a robot file.
// The path must have a .yaml or .yml extension and the file must not exceed
// MaxFileSize.
func Load(path string) (*Robot, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: file must have .yaml or .yml extension, got %q", ErrInvalidConfig, ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat robot file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: file too large: %d bytes (max %d)", ErrInvalidConfig, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read robot file: %w", err)
	}
	glog.V(1).Infof("Loaded robot file %s (%d bytes)", cleanPath, len(data))

	return Parse(data)
}

// Parse decodes a robot definition, fills defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Robot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Robot
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&r)
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// applyDefaults fills in missing values.
func applyDefaults(r *Robot) {
	if r.Name == "" {
		r.Name = "robot"
		glog.Warningf("Robot definition has no name, using %q", r.Name)
	}
	if r.Units == "" {
		r.Units = Radians
		glog.V(1).Infof("Robot %s: units not set, assuming %s", r.Name, r.Units)
	}
	if r.Capacity == 0 {
		r.Capacity = dh.MaxLinks
	}
	if r.Tool.Offset == nil {
		r.Tool.Offset = []float64{0, 0, 0}
	}
}

// Validate checks a definition after defaults have been applied.
// All failures wrap ErrInvalidConfig.
func (r *Robot) Validate() error {
	switch r.Units {
	case Radians, Degrees:
	default:
		return fmt.Errorf("%w: units must be %q or %q, got %q", ErrInvalidConfig, Radians, Degrees, r.Units)
	}
	if r.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, r.Capacity)
	}
	if len(r.Links) == 0 {
		return fmt.Errorf("%w: at least one link is required", ErrInvalidConfig)
	}
	if len(r.Links) > r.Capacity {
		return fmt.Errorf("%w: %d links exceed capacity %d", ErrInvalidConfig, len(r.Links), r.Capacity)
	}
	for i, l := range r.Links {
		if !finite(l.Theta, l.D, l.A, l.Alpha) {
			return fmt.Errorf("%w: link %d has a non-finite parameter", ErrInvalidConfig, i+1)
		}
	}
	if len(r.Tool.Offset) != 3 {
		return fmt.Errorf("%w: tool offset needs 3 values, got %d", ErrInvalidConfig, len(r.Tool.Offset))
	}
	if !finite(append([]float64{r.Tool.ZOffset}, r.Tool.Offset...)...) {
		return fmt.Errorf("%w: tool has a non-finite value", ErrInvalidConfig)
	}
	if len(r.Joints) != 0 && len(r.Joints) != len(r.Links) {
		return fmt.Errorf("%w: %d joints for %d links", ErrInvalidConfig, len(r.Joints), len(r.Links))
	}
	if !finite(r.Joints...) {
		return fmt.Errorf("%w: joints contain a non-finite value", ErrInvalidConfig)
	}

	return nil
}

// Angle converts an angle written in r.Units to radians.
func (r *Robot) Angle(v float64) float64 {
	if r.Units == Degrees {
		return rotation.Deg2Rad(v)
	}

	return v
}

// Build creates a chain from the definition: links with angles in radians,
// the configured capacity, initial joints and tool.
// Defaults are filled and the definition validated on a copy, so a Robot
// built by hand behaves like one returned by Parse. r is not modified.
func (r *Robot) Build() (*dh.Chain, error) {
	rc := *r
	applyDefaults(&rc)
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	r = &rc

	links := make([]dh.Link, len(r.Links))
	for i, l := range r.Links {
		links[i] = dh.NewLink(r.Angle(l.Theta), l.D, l.A, r.Angle(l.Alpha))
	}

	opts := []dh.ChainOption{dh.WithCapacity(r.Capacity)}
	if len(r.Joints) > 0 {
		q := make([]float64, len(r.Joints))
		for i, v := range r.Joints {
			q[i] = r.Angle(v)
		}
		opts = append(opts, dh.WithJointVector(q))
	}

	c, err := dh.NewChain(links, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: build %s: %w", r.Name, err)
	}

	off := r.Tool.Offset
	if err := c.SetToolTransform(off[0], off[1], off[2], r.Tool.ZOffset); err != nil {
		return nil, fmt.Errorf("config: build %s: %w", r.Name, err)
	}
	glog.V(1).Infof("Built robot %s: %d links, capacity %d, tool z-offset %g",
		r.Name, c.LinkCount(), c.Capacity(), c.ToolOffset())

	return c, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
