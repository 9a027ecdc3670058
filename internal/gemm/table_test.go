package gemm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testTable = ConfigTable{
	{10, 10, 10, 1, 2, 4, 4, 1, 2, 0, 1, 0, 1, 0},
	{100, 100, 100, 1, 4, 8, 8, 1, 4, 0, 0, 1, 0, 1},
	{12, 10, 10, 1, 3, 3, 3, 1, 1, 0, 0, 0, 0, 0},
}

func TestNearest(t *testing.T) {
	t.Parallel()
	row, err := testTable.Nearest(Shape{M: 90, N: 95, K: 110, B: 1})
	require.NoError(t, err)
	require.Equal(t, testTable[1], row)

	// Distance 1 to both of the first and third rows; first wins.
	row, err = testTable.Nearest(Shape{M: 11, N: 10, K: 10, B: 1})
	require.NoError(t, err)
	require.Equal(t, testTable[0], row)

	_, err = ConfigTable{}.Nearest(Shape{M: 1, N: 1, K: 1, B: 1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFindLHSRHS(t *testing.T) {
	t.Parallel()
	p, err := FindLHSRHS(testTable, Shape{M: 200, N: 200, K: 100, B: 1})
	require.NoError(t, err)
	require.Equal(t, LHSInfo{M0: 4, K0: 8, V0: 1, Transpose: true}, p.LHS)
	require.Equal(t, RHSInfo{N0: 8, K0: 8, H0: 4, ExportToTexture: true}, p.RHS)

	p, err = FindLHSRHS(testTable, Shape{M: 1, N: 2, K: 8, B: 1})
	require.NoError(t, err)
	require.Equal(t, 1, p.RHS.H0, "h0 clamps to n/n0")
	require.True(t, p.RHS.Interleave)
	require.True(t, p.RHS.Transpose)
}
