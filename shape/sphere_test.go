package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/shape"
)

func TestHyperSphere_LiteralIdentities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		r        float64
		wantVol  float64
		wantSurf float64
	}{
		{1, 1, 2, 2},
		{2, 1, math.Pi, 2 * math.Pi},
		{3, 1, 4 * math.Pi / 3, 4 * math.Pi},
		{4, 1, math.Pi * math.Pi / 2, 2 * math.Pi * math.Pi},
	}

	for _, tc := range tests {
		s, err := shape.NewHyperSphere(tc.n, tc.r)
		require.NoError(t, err)

		vol, err := s.Volume()
		require.NoError(t, err)
		require.InDelta(t, tc.wantVol, vol, 1e-12)

		surf, err := s.Surface()
		require.NoError(t, err)
		require.InDelta(t, tc.wantSurf, surf, 1e-9)
	}
}

func TestHyperSphere_Describe3D(t *testing.T) {
	t.Parallel()

	s, err := shape.NewHyperSphere(3, 1.0)
	require.NoError(t, err)

	report, err := s.Describe()
	require.NoError(t, err)
	require.InDelta(t, 4.18879020478639, report.Volume, 1e-12)
	require.InDelta(t, 12.56637061435917, report.Surface, 1e-12)
	require.Contains(t, report.VolumeFormula, "V_3 = (4/3)πr³")
}

func TestHyperSphere_ScalingLaw(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		base, err := shape.NewHyperSphere(n, 1.0)
		require.NoError(t, err)
		scaled, err := shape.NewHyperSphere(n, 3.0)
		require.NoError(t, err)

		baseVol, err := base.Volume()
		require.NoError(t, err)
		scaledVol, err := scaled.Volume()
		require.NoError(t, err)

		require.InEpsilon(t, baseVol*math.Pow(3, float64(n)), scaledVol, 1e-9)
	}
}

func TestHyperSphere_CrossSectionIntegral(t *testing.T) {
	t.Parallel()

	s, err := shape.NewHyperSphere(3, 2.0)
	require.NoError(t, err)

	vol, err := s.Volume()
	require.NoError(t, err)

	const steps = 20000
	const r = 2.0
	dt := 2 * r / steps
	var integral float64
	for i := 0; i < steps; i++ {
		offset := -r + (float64(i)+0.5)*dt
		cs, err := s.CrossSection(offset)
		require.NoError(t, err)
		integral += cs * dt
	}
	require.InEpsilon(t, vol, integral, 1e-3)
}

func TestHyperSphere_Contains(t *testing.T) {
	t.Parallel()

	s, err := shape.NewHyperSphere(2, 1.0)
	require.NoError(t, err)

	inside, err := s.Contains([]float64{0.5, 0.5})
	require.NoError(t, err)
	require.True(t, inside)

	outside, err := s.Contains([]float64{1, 1})
	require.NoError(t, err)
	require.False(t, outside)
}

func TestHyperSphere_DomainErrors(t *testing.T) {
	t.Parallel()

	_, err := shape.NewHyperSphere(0, 1.0)
	require.Error(t, err)

	_, err = shape.NewHyperSphere(2, -1.0)
	require.Error(t, err)

	_, err = shape.NewHyperSphere(2, math.NaN())
	require.Error(t, err)
}
