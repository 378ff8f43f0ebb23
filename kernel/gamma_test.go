package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/kernel"
)

const epsTight = 1e-12

func TestGamma_IntegersAndHalfIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"Gamma(1)=1", 1, 1},
		{"Gamma(2)=1", 2, 1},
		{"Gamma(3)=2", 3, 2},
		{"Gamma(4)=6", 4, 6},
		{"Gamma(5)=24", 5, 24},
		{"Gamma(0.5)=sqrt(pi)", 0.5, math.Sqrt(math.Pi)},
		{"Gamma(1.5)=sqrt(pi)/2", 1.5, math.Sqrt(math.Pi) / 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := kernel.Gamma(tc.x)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, epsTight*math.Max(1, math.Abs(tc.want)))
		})
	}
}

func TestGamma_DomainErrors(t *testing.T) {
	t.Parallel()

	tests := []float64{0, -1, -2, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, x := range tests {
		_, err := kernel.Gamma(x)
		require.Error(t, err)
		var domainErr *kernel.DomainError
		require.ErrorAs(t, err, &domainErr)
	}
}

func TestUnitBallVolume_LiteralValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want float64
	}{
		{1, 2},
		{2, math.Pi},
		{3, 4 * math.Pi / 3},
		{4, math.Pi * math.Pi / 2},
	}

	for _, tc := range tests {
		got, err := kernel.UnitBallVolume(tc.n)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, epsTight)
	}
}

func TestUnitBallVolume_PeaksAtFive(t *testing.T) {
	t.Parallel()

	var peakN int
	var peakV float64
	for n := 1; n <= 12; n++ {
		v, err := kernel.UnitBallVolume(n)
		require.NoError(t, err)
		if v > peakV {
			peakV = v
			peakN = n
		}
	}
	require.Equal(t, 5, peakN)

	v5, err := kernel.UnitBallVolume(5)
	require.NoError(t, err)
	v6, err := kernel.UnitBallVolume(6)
	require.NoError(t, err)
	require.Less(t, v6, v5)
}

func TestUnitBallVolume_InvalidDimension(t *testing.T) {
	t.Parallel()

	_, err := kernel.UnitBallVolume(0)
	require.Error(t, err)
}
