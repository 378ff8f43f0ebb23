package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/tiling"
)

func TestRegularTiling_SquareEfficiencyIsOne(t *testing.T) {
	t.Parallel()

	rt, err := tiling.NewRegularTiling(tiling.KindSquare, tiling.Region{Width: 10, Height: 10}, 1)
	require.NoError(t, err)

	report, err := tiling.Analyze(rt)
	require.NoError(t, err)
	require.InDelta(t, 1.0, report.Efficiency, 1e-9)
	require.Equal(t, 4, report.Coordination)
	require.Len(t, report.Tiles, 100)
}

func TestRegularTiling_TriangularEfficiencyIsOne(t *testing.T) {
	t.Parallel()

	rt, err := tiling.NewRegularTiling(tiling.KindTriangular, tiling.Region{Width: 10, Height: 10}, 1)
	require.NoError(t, err)

	report, err := tiling.Analyze(rt)
	require.NoError(t, err)
	require.InDelta(t, 1.0, report.Efficiency, 1e-6)
	require.NotEmpty(t, report.Tiles)
}

func TestRegularTiling_CirclePackRealizedEfficiencyNearTheoretical(t *testing.T) {
	t.Parallel()

	rt, err := tiling.NewRegularTiling(tiling.KindCirclePack, tiling.Region{Width: 20, Height: 20}, 1)
	require.NoError(t, err)

	report, err := tiling.Analyze(rt)
	require.NoError(t, err)
	theoretical := tiling.TheoreticalCirclePackEfficiency()
	require.InDelta(t, theoretical, report.Efficiency, 0.05*theoretical)
}

func TestHexagonalTiling_LiteralScenario(t *testing.T) {
	t.Parallel()

	ht, err := tiling.NewHexagonalTiling(tiling.Region{Width: 10, Height: 10}, 1)
	require.NoError(t, err)

	report, err := tiling.Analyze(ht)
	require.NoError(t, err)
	require.InDelta(t, 1.0, report.Efficiency, 1e-9)
	require.Equal(t, 6, report.Coordination)
	require.Greater(t, len(report.Tiles), 20)
}

func TestVoronoiTiling_DeterministicFromSeed(t *testing.T) {
	t.Parallel()

	region := tiling.Region{Width: 10, Height: 10}
	a, err := tiling.NewVoronoiTilingFromCount(region, 8, 42)
	require.NoError(t, err)
	b, err := tiling.NewVoronoiTilingFromCount(region, 8, 42)
	require.NoError(t, err)

	tilesA, err := a.Tiles()
	require.NoError(t, err)
	tilesB, err := b.Tiles()
	require.NoError(t, err)
	require.Equal(t, len(tilesA), len(tilesB))
	for i := range tilesA {
		require.InDelta(t, tilesA[i].Centroid.X, tilesB[i].Centroid.X, 1e-12)
		require.InDelta(t, tilesA[i].Centroid.Y, tilesB[i].Centroid.Y, 1e-12)
	}
}

func TestVoronoiTiling_CoverageIsFullRegion(t *testing.T) {
	t.Parallel()

	region := tiling.Region{Width: 10, Height: 10}
	vt, err := tiling.NewVoronoiTilingFromCount(region, 6, 7)
	require.NoError(t, err)

	report, err := tiling.Analyze(vt)
	require.NoError(t, err)
	require.InDelta(t, 1.0, report.Efficiency, 1e-6)
}

func TestTiling_DomainErrors(t *testing.T) {
	t.Parallel()

	_, err := tiling.NewRegularTiling(tiling.KindSquare, tiling.Region{Width: 0, Height: 10}, 1)
	require.Error(t, err)

	_, err = tiling.NewHexagonalTiling(tiling.Region{Width: 10, Height: 10}, 0)
	require.Error(t, err)

	_, err = tiling.NewVoronoiTiling(tiling.Region{Width: 10, Height: 10}, nil)
	require.Error(t, err)
}
