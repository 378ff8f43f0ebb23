package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypershape/hypershape/kernel"
)

func TestBinomial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, k int
		want int64
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{4, 2, 6},
		{10, 3, 120},
		{5, 6, 0},
		{5, -1, 0},
	}

	for _, tc := range tests {
		got, err := kernel.Binomial(tc.n, tc.k)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestBinomial_EulerIdentityForCube(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		var sum int64
		for k := 0; k <= n; k++ {
			c, err := kernel.Binomial(n, k)
			require.NoError(t, err)
			var pow int64 = 1
			for i := 0; i < n-k; i++ {
				pow *= 2
			}
			sum += c * pow
		}

		var want int64 = 1
		for i := 0; i < n; i++ {
			want *= 3
		}
		require.Equal(t, want, sum)
	}
}

func TestDoubleFactorial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 15},
		{6, 48},
		{7, 105},
	}
	for _, tc := range tests {
		got, err := kernel.DoubleFactorial(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	got, err := kernel.Factorial(5)
	require.NoError(t, err)
	require.Equal(t, int64(120), got)

	_, err = kernel.Factorial(-1)
	require.Error(t, err)

	_, err = kernel.Factorial(21)
	require.Error(t, err)
}
