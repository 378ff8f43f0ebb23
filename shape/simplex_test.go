package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/shape"
)

func TestSimplex_KnownDimensions(t *testing.T) {
	t.Parallel()

	// N=2: equilateral triangle of edge a, area = a^2*sqrt(3)/4.
	tri, err := shape.NewSimplex(2, 2.0)
	require.NoError(t, err)
	vol, err := tri.Volume()
	require.NoError(t, err)
	require.InDelta(t, 4*math.Sqrt(3)/4, vol, 1e-9)

	// N=3: regular tetrahedron of edge a, volume = a^3/(6*sqrt(2)).
	tet, err := shape.NewSimplex(3, 2.0)
	require.NoError(t, err)
	vol, err = tet.Volume()
	require.NoError(t, err)
	require.InDelta(t, 8/(6*math.Sqrt(2)), vol, 1e-9)
}

func TestSimplex_SurfaceIsSumOfFacets(t *testing.T) {
	t.Parallel()

	tet, err := shape.NewSimplex(3, 1.0)
	require.NoError(t, err)
	surf, err := tet.Surface()
	require.NoError(t, err)
	// 4 equilateral-triangle faces of edge 1: 4 * sqrt(3)/4 = sqrt(3).
	require.InDelta(t, math.Sqrt(3), surf, 1e-9)
}

func TestSimplex_HighDimensionDegradesToZeroNotNaN(t *testing.T) {
	t.Parallel()

	s, err := shape.NewSimplex(900, 1.0)
	require.NoError(t, err)

	vol, err := s.Volume()
	require.NoError(t, err)
	require.False(t, math.IsNaN(vol))
	require.False(t, math.IsInf(vol, 0))
}

func TestSimplex_CircumradiusInradiusRatio(t *testing.T) {
	t.Parallel()

	s, err := shape.NewSimplex(3, 2.0)
	require.NoError(t, err)
	// For a regular N-simplex, circumradius = N * inradius.
	require.InDelta(t, 3*s.Inradius(), s.Circumradius(), 1e-9)
}

func TestSimplex_ContainsOrigin(t *testing.T) {
	t.Parallel()

	s, err := shape.NewSimplex(2, 1.0)
	require.NoError(t, err)
	inside, err := s.Contains([]float64{0, 0})
	require.NoError(t, err)
	require.True(t, inside)
}

func TestSimplex_DomainErrors(t *testing.T) {
	t.Parallel()

	_, err := shape.NewSimplex(0, 1.0)
	require.Error(t, err)

	_, err = shape.NewSimplex(2, -1.0)
	require.Error(t, err)
}
