package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bezier2d/bezier2d"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const tomlScript = `
center = [0.0, 0.0]
anchors = [[3.0, 0.0], [5.0, 2.0]]
deletes = [3]
spacing = 0.5
resolution = 2.0

[[moves]]
index = 0
to = [-1.0, 1.0]
`

const yamlScript = `
center: [0, 0]
auto_set: true
anchors:
  - [3, 2]
  - [5, -1]
closed: true
splits:
  - segment: 0
    at: [1, 2]
transform:
  translate: [10, 0]
`

func TestLoadScriptTOML(t *testing.T) {
	s, err := LoadScript(writeScript(t, "path.toml", tomlScript))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, s.Center)
	assert.Equal(t, [][]float64{{3, 0}, {5, 2}}, s.Anchors)
	assert.Equal(t, []int{3}, s.Deletes)
	assert.Equal(t, []Move{{Index: 0, To: []float64{-1, 1}}}, s.Moves)
	assert.Equal(t, 0.5, s.Spacing)
	assert.Equal(t, 2.0, s.Resolution)
	assert.False(t, s.AutoSet)
	assert.Nil(t, s.Transform)
}

func TestLoadScriptYAML(t *testing.T) {
	s, err := LoadScript(writeScript(t, "path.yaml", yamlScript))
	require.NoError(t, err)
	assert.True(t, s.AutoSet)
	assert.True(t, s.Closed)
	assert.Equal(t, []Split{{Segment: 0, At: []float64{1, 2}}}, s.Splits)
	require.NotNil(t, s.Transform)
	assert.Equal(t, []float64{10, 0}, s.Transform.Translate)
}

func TestLoadScriptErrors(t *testing.T) {
	_, err := LoadScript(writeScript(t, "path.json", "{}"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadScript(writeScript(t, "broken.toml", "anchors = [[1.0, "))
	assert.Error(t, err)
}

func TestBuildTOML(t *testing.T) {
	s, err := LoadScript(writeScript(t, "path.toml", tomlScript))
	require.NoError(t, err)
	p, err := s.Build()
	require.NoError(t, err)

	// Deleting anchor 3 leaves the first and the two appended anchors.
	assert.Equal(t, 7, p.PointCount())
	assert.False(t, p.IsClosed())
	first, err := p.Point(0)
	require.NoError(t, err)
	assert.Equal(t, bezier2d.Pt(-1, 1), first)
	a3, _ := p.Point(3)
	a6, _ := p.Point(6)
	assert.Equal(t, bezier2d.Pt(3, 0), a3)
	assert.Equal(t, bezier2d.Pt(5, 2), a6)
}

func TestBuildYAML(t *testing.T) {
	s, err := LoadScript(writeScript(t, "path.yml", yamlScript))
	require.NoError(t, err)
	p, err := s.Build()
	require.NoError(t, err)

	assert.True(t, p.IsClosed())
	assert.True(t, p.AutoSetControlPoints())
	// Five anchors after the split, closed.
	assert.Equal(t, 15, p.PointCount())
	assert.Equal(t, 5, p.AnchorCount())
	a3, _ := p.Point(3)
	assert.InDelta(t, 11, a3.X, 1e-12)
	assert.InDelta(t, 2, a3.Y, 1e-12)
}

func TestBuildStrict(t *testing.T) {
	s := &Script{
		Strict:  true,
		Deletes: []int{0},
	}
	_, err := s.Build()
	assert.ErrorIs(t, err, bezier2d.ErrInvalidOperation)

	s = &Script{Moves: []Move{{Index: 10, To: []float64{0, 0}}}}
	_, err = s.Build()
	assert.ErrorIs(t, err, bezier2d.ErrIndexOutOfRange)

	s = &Script{Anchors: [][]float64{{1, 2, 3}}}
	_, err = s.Build()
	assert.ErrorContains(t, err, "anchors[0]: want 2 coordinates, got 3")
}

func TestTransformAffine(t *testing.T) {
	tr := &Transform{Scale: []float64{2, 2}, Rotate: 90, Translate: []float64{1, 0}}
	aff, err := tr.Affine()
	require.NoError(t, err)
	got := bezier2d.Pt(1, 0).Transform(aff)
	// (1, 0) → (2, 0) → (0, 2) → (1, 2)
	assert.InDelta(t, 1, got.X, 1e-12)
	assert.InDelta(t, 2, got.Y, 1e-12)

	_, err = (&Transform{Scale: []float64{2}}).Affine()
	assert.Error(t, err)

	id, err := (&Transform{}).Affine()
	require.NoError(t, err)
	assert.Equal(t, bezier2d.Pt(3, 4), bezier2d.Pt(3, 4).Transform(id))
}
