package gemm

import (
	"math"

	"github.com/pkg/errors"
)

// ConfigRow is one tuned configuration: the problem it was measured on
// followed by the parameters that won. Flags are 0 or 1.
//
//	M, N, K, B, M0, N0, K0, V0, H0, LHSInterleave, RHSInterleave, LHSTranspose, RHSTranspose, ExportToTexture
type ConfigRow [14]int

// ConfigTable is a list of measured configurations.
type ConfigTable []ConfigRow

// Nearest returns the row whose (M, N, K, B) is closest to s. Distances are
// truncated to integers and the first row wins ties.
func (t ConfigTable) Nearest(s Shape) (ConfigRow, error) {
	if len(t) == 0 {
		return ConfigRow{}, errors.Wrap(ErrInvalidArgument, "empty config table")
	}
	best := 0
	minDist := uint64(math.MaxUint64)
	for i, row := range t {
		dm := float64(s.M - row[0])
		dn := float64(s.N - row[1])
		dk := float64(s.K - row[2])
		db := float64(s.B - row[3])
		dist := uint64(math.Sqrt(dm*dm + dn*dn + dk*dk + db*db))
		if dist < minDist {
			minDist = dist
			best = i
		}
	}
	return t[best], nil
}

// FindLHSRHS looks up the nearest row and builds its descriptor pair for s.
func FindLHSRHS(t ConfigTable, s Shape) (Pair, error) {
	row, err := t.Nearest(s)
	if err != nil {
		return Pair{}, err
	}
	lhs, rhs, err := ConfigureLHSRHS(s.M, s.N, Params{
		M0: row[4], N0: row[5], K0: row[6], V0: row[7], H0: row[8],
		LHSInterleave:   row[9] != 0,
		RHSInterleave:   row[10] != 0,
		LHSTranspose:    row[11] != 0,
		RHSTranspose:    row[12] != 0,
		ExportToTexture: row[13] != 0,
	})
	if err != nil {
		return Pair{}, err
	}
	return Pair{LHS: lhs, RHS: rhs}, nil
}
