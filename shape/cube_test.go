package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/shape"
)

func TestHyperCube_LiteralExample(t *testing.T) {
	t.Parallel()

	c, err := shape.NewHyperCube(4, 2.0)
	require.NoError(t, err)

	vol, err := c.Volume()
	require.NoError(t, err)
	require.Equal(t, 16.0, vol)

	surf, err := c.Surface()
	require.NoError(t, err)
	require.Equal(t, 64.0, surf)

	vc, err := c.VertexCount()
	require.NoError(t, err)
	require.Equal(t, 16.0, vc)

	ec, err := c.EdgeCount()
	require.NoError(t, err)
	require.Equal(t, 32.0, ec)
}

func TestHyperCube_EulerIdentity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		c, err := shape.NewHyperCube(n, 1.0)
		require.NoError(t, err)

		var sum float64
		for k := 0; k <= n; k++ {
			kf, err := c.KFaceCount(k)
			require.NoError(t, err)
			sum += kf
		}
		require.InDelta(t, math.Pow(3, float64(n)), sum, 1e-6)
	}
}

func TestHyperCube_Diagonal(t *testing.T) {
	t.Parallel()

	c, err := shape.NewHyperCube(3, 2.0)
	require.NoError(t, err)
	require.InDelta(t, 2*math.Sqrt(3), c.Diagonal(), 1e-12)
}

func TestHyperCube_VertexCountResourceLimit(t *testing.T) {
	t.Parallel()

	c, err := shape.NewHyperCube(1030, 1.0)
	require.NoError(t, err)

	_, err = c.VertexCount()
	require.Error(t, err)
}

func TestHyperCube_Contains(t *testing.T) {
	t.Parallel()

	c, err := shape.NewHyperCube(2, 2.0)
	require.NoError(t, err)

	inside, err := c.Contains([]float64{1, 1})
	require.NoError(t, err)
	require.True(t, inside)

	outside, err := c.Contains([]float64{3, 1})
	require.NoError(t, err)
	require.False(t, outside)
}
