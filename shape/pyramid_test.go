package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/shape"
)

func TestHyperPyramid_Square2D(t *testing.T) {
	t.Parallel()

	// N=2: an isoceles triangle with base s and height h. Volume here is
	// "area" = s*h/2.
	p, err := shape.NewHyperPyramid(2, 2.0, 3.0)
	require.NoError(t, err)
	vol, err := p.Volume()
	require.NoError(t, err)
	require.InDelta(t, 3.0, vol, 1e-9)

	surf, err := p.Surface()
	require.NoError(t, err)
	l := p.SlantHeight()
	// perimeter = base + 2 * slant edges.
	require.InDelta(t, 2.0+2*l, surf, 1e-9)
}

func TestHyperPyramid_Square3D(t *testing.T) {
	t.Parallel()

	// N=3: a real square pyramid with base side s and height h.
	p, err := shape.NewHyperPyramid(3, 2.0, 3.0)
	require.NoError(t, err)
	vol, err := p.Volume()
	require.NoError(t, err)
	require.InDelta(t, 2.0*2.0*3.0/3.0, vol, 1e-9)

	surf, err := p.Surface()
	require.NoError(t, err)
	l := p.SlantHeight()
	// base area + 4 * (triangle lateral face area = s*l/2)
	want := 2.0*2.0 + 4*(2.0*l/2)
	require.InDelta(t, want, surf, 1e-9)
}

func TestHyperPyramid_MinimumDimension(t *testing.T) {
	t.Parallel()

	_, err := shape.NewHyperPyramid(1, 1.0, 1.0)
	require.Error(t, err)
}

func TestHyperPyramid_Contains(t *testing.T) {
	t.Parallel()

	p, err := shape.NewHyperPyramid(3, 2.0, 2.0)
	require.NoError(t, err)

	apexBase, err := p.Contains([]float64{0, 0, 0})
	require.NoError(t, err)
	require.True(t, apexBase)

	outside, err := p.Contains([]float64{5, 5, 0})
	require.NoError(t, err)
	require.False(t, outside)

	aboveHeight, err := p.Contains([]float64{0, 0, 3})
	require.NoError(t, err)
	require.False(t, aboveHeight)
}

func TestHyperPyramid_SlantHeight(t *testing.T) {
	t.Parallel()

	p, err := shape.NewHyperPyramid(3, 2.0, 1.5)
	require.NoError(t, err)
	want := math.Sqrt(1.5*1.5 + 1*1)
	require.InDelta(t, want, p.SlantHeight(), 1e-12)
}
