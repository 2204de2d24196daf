package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bezier2d/bezier2d"
)

// Script describes a path as a sequence of edits, replayed in field order:
// the path starts at Center, gets its anchors appended, is closed if Closed is
// set, then has splits, moves and deletions applied, and is finally
// transformed.
type Script struct {
	Center  []float64 `toml:"center" yaml:"center"`
	AutoSet bool      `toml:"auto_set" yaml:"auto_set"`
	// Strict turns ignored edits into errors.
	Strict  bool        `toml:"strict" yaml:"strict"`
	Anchors [][]float64 `toml:"anchors" yaml:"anchors"`
	Closed  bool        `toml:"closed" yaml:"closed"`
	Splits  []Split     `toml:"splits" yaml:"splits"`
	Moves   []Move      `toml:"moves" yaml:"moves"`
	// Deletes lists anchor indices, each relative to the path at the time it
	// is applied.
	Deletes   []int      `toml:"deletes" yaml:"deletes"`
	Transform *Transform `toml:"transform" yaml:"transform"`

	Spacing    float64 `toml:"spacing" yaml:"spacing"`
	Resolution float64 `toml:"resolution" yaml:"resolution"`
}

type Split struct {
	Segment int       `toml:"segment" yaml:"segment"`
	At      []float64 `toml:"at" yaml:"at"`
}

type Move struct {
	Index int       `toml:"index" yaml:"index"`
	To    []float64 `toml:"to" yaml:"to"`
}

// Transform is applied as scale, then rotation, then translation.
type Transform struct {
	Translate []float64 `toml:"translate" yaml:"translate"`
	// Rotate is in degrees.
	Rotate float64   `toml:"rotate" yaml:"rotate"`
	Scale  []float64 `toml:"scale" yaml:"scale"`
}

// LoadScript reads a script from a TOML or YAML file, chosen by extension.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("load script %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return &s, nil
}

// Build replays the script against a new path.
func (s *Script) Build() (*bezier2d.Path, error) {
	center := bezier2d.Pt(0, 0)
	if s.Center != nil {
		var err error
		if center, err = point("center", s.Center); err != nil {
			return nil, err
		}
	}
	path := bezier2d.NewPath(center)
	if s.Strict {
		path.SetEditPolicy(bezier2d.RejectInvalid)
	}
	path.SetAutoSetControlPoints(s.AutoSet)

	for i, a := range s.Anchors {
		pt, err := point(fmt.Sprintf("anchors[%d]", i), a)
		if err != nil {
			return nil, err
		}
		if err := path.AddSegment(pt); err != nil {
			return nil, fmt.Errorf("anchors[%d]: %w", i, err)
		}
	}
	path.SetClosed(s.Closed)
	for i, sp := range s.Splits {
		pt, err := point(fmt.Sprintf("splits[%d].at", i), sp.At)
		if err != nil {
			return nil, err
		}
		if err := path.SplitSegment(pt, sp.Segment); err != nil {
			return nil, fmt.Errorf("splits[%d]: %w", i, err)
		}
	}
	for i, mv := range s.Moves {
		pt, err := point(fmt.Sprintf("moves[%d].to", i), mv.To)
		if err != nil {
			return nil, err
		}
		if err := path.MovePoint(mv.Index, pt); err != nil {
			return nil, fmt.Errorf("moves[%d]: %w", i, err)
		}
	}
	for i, idx := range s.Deletes {
		if err := path.DeleteSegment(idx); err != nil {
			return nil, fmt.Errorf("deletes[%d]: %w", i, err)
		}
	}
	if s.Transform != nil {
		aff, err := s.Transform.Affine()
		if err != nil {
			return nil, err
		}
		path.Transform(aff)
	}
	return path, nil
}

// Affine returns the transform as an affine matrix.
func (t *Transform) Affine() (bezier2d.Affine, error) {
	aff := bezier2d.Identity
	if t.Scale != nil {
		if len(t.Scale) != 2 {
			return aff, fmt.Errorf("transform.scale: want 2 values, got %d", len(t.Scale))
		}
		aff = aff.ThenScale(t.Scale[0], t.Scale[1])
	}
	aff = aff.ThenRotate(t.Rotate * math.Pi / 180)
	if t.Translate != nil {
		v, err := point("transform.translate", t.Translate)
		if err != nil {
			return aff, err
		}
		aff = aff.ThenTranslate(bezier2d.Vec2(v))
	}
	return aff, nil
}

func point(field string, v []float64) (bezier2d.Point, error) {
	if len(v) != 2 {
		return bezier2d.Point{}, fmt.Errorf("%s: want 2 coordinates, got %d", field, len(v))
	}
	return bezier2d.Pt(v[0], v[1]), nil
}
