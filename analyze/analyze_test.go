package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/analyze"
	"github.com/hypershape/hypershape/shape"
)

func TestCompare_LiteralScenario(t *testing.T) {
	t.Parallel()

	sphere, err := shape.NewHyperSphere(4, 1.0)
	require.NoError(t, err)
	cube, err := shape.NewHyperCube(4, 1.0)
	require.NoError(t, err)

	report, err := analyze.Compare(sphere, cube)
	require.NoError(t, err)
	require.InDelta(t, 4.9348022, report.ShapeA.Volume, 1e-6)
	require.Equal(t, 1.0, report.ShapeB.Volume)
	require.False(t, report.VolumeRatio.Undefined)
	require.InDelta(t, 4.9348022, report.VolumeRatio.Value, 1e-6)
	require.Equal(t, "a", report.LargestByVolume)
}

func TestCompare_DivisionByZeroIsUndefinedNotNaN(t *testing.T) {
	t.Parallel()

	a, err := shape.NewHyperSphere(2, 1.0)
	require.NoError(t, err)
	zero, err := shape.NewHyperSphere(2, 0.0)
	require.NoError(t, err)

	report, err := analyze.Compare(a, zero)
	require.NoError(t, err)
	require.True(t, report.VolumeRatio.Undefined)
	require.Equal(t, "undefined", report.VolumeRatio.String())
}

func TestScalingSweep_PeakAtFive(t *testing.T) {
	t.Parallel()

	report, err := analyze.ScalingSweep(shape.KindSphere, "volume", 1, 10, []float64{1.0})
	require.NoError(t, err)
	require.Equal(t, 5, report.PeakDim)

	for i := 1; i < len(report.Values); i++ {
		if report.Dims[i] <= 5 {
			require.Greater(t, report.Values[i], report.Values[i-1])
		}
	}
	require.Less(t, report.Values[len(report.Values)-1], report.Values[len(report.Values)-2])
}

func TestScalingSweep_RejectsOversizedSpan(t *testing.T) {
	t.Parallel()

	_, err := analyze.ScalingSweep(shape.KindSphere, "volume", 1, 1+analyze.MaxScalingSpan, []float64{1.0})
	require.Error(t, err)
}

func TestBatch_DescribesEveryShape(t *testing.T) {
	t.Parallel()

	sphere, err := shape.NewHyperSphere(3, 1.0)
	require.NoError(t, err)
	cube, err := shape.NewHyperCube(3, 2.0)
	require.NoError(t, err)

	report, err := analyze.Batch([]shape.Shape{sphere, cube}, []string{"volume", "surface"})
	require.NoError(t, err)
	require.Len(t, report.Reports, 2)
}

func TestBatch_RejectsOversizedBatch(t *testing.T) {
	t.Parallel()

	shapes := make([]shape.Shape, analyze.MaxBatchSize+1)
	for i := range shapes {
		s, err := shape.NewHyperSphere(2, 1.0)
		require.NoError(t, err)
		shapes[i] = s
	}

	_, err := analyze.Batch(shapes, []string{"volume"})
	require.Error(t, err)
}
