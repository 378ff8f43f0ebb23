package shape_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/shape"
)

func TestNew_DispatchesByKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   shape.Kind
		n      int
		params []float64
	}{
		{shape.KindSphere, 3, []float64{1.0}},
		{shape.KindCube, 4, []float64{2.0}},
		{shape.KindEllipsoid, 2, []float64{3.0, 1.0}},
		{shape.KindSimplex, 3, []float64{1.0}},
		{shape.KindPyramid, 3, []float64{2.0, 2.0}},
	}

	for _, tc := range tests {
		s, err := shape.New(tc.kind, tc.n, tc.params)
		require.NoError(t, err)
		require.Equal(t, tc.kind, s.Kind())
		require.Equal(t, tc.n, s.Dimension())

		_, err = s.Volume()
		require.NoError(t, err)
	}
}

func TestNew_RejectsDimensionOverBudget(t *testing.T) {
	t.Parallel()

	_, err := shape.New(shape.KindSphere, shape.DefaultMaxDimension+1, []float64{1.0})
	require.Error(t, err)
}

func TestNew_RejectsWrongArity(t *testing.T) {
	t.Parallel()

	_, err := shape.New(shape.KindSphere, 3, []float64{1.0, 2.0})
	require.Error(t, err)

	_, err = shape.New(shape.KindPyramid, 3, []float64{1.0})
	require.Error(t, err)
}

func TestNew_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := shape.New(shape.Kind("torus"), 3, []float64{1.0})
	require.Error(t, err)
}
