package gemm

import (
	"fmt"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

// LHSInfo describes how the LHS matrix is blocked for a tiled GEMM.
type LHSInfo struct {
	M0         int  `json:"m0"`
	K0         int  `json:"k0"`
	V0         int  `json:"v0"`
	Transpose  bool `json:"transpose"`
	Interleave bool `json:"interleave"`
}

func (l LHSInfo) String() string {
	return fmt.Sprintf("m0=%d k0=%d v0=%d t=%s i=%s", l.M0, l.K0, l.V0, flag(l.Transpose), flag(l.Interleave))
}

// RHSInfo describes how the RHS matrix is blocked for a tiled GEMM.
type RHSInfo struct {
	N0              int  `json:"n0"`
	K0              int  `json:"k0"`
	H0              int  `json:"h0"`
	Transpose       bool `json:"transpose"`
	Interleave      bool `json:"interleave"`
	ExportToTexture bool `json:"export_to_texture"`
}

func (r RHSInfo) String() string {
	return fmt.Sprintf("n0=%d k0=%d h0=%d t=%s i=%s img=%s", r.N0, r.K0, r.H0, flag(r.Transpose), flag(r.Interleave), flag(r.ExportToTexture))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Pair is an LHS/RHS descriptor pair produced together.
type Pair struct {
	LHS LHSInfo `json:"lhs"`
	RHS RHSInfo `json:"rhs"`
}

func (p Pair) String() string {
	return "lhs{" + p.LHS.String() + "} rhs{" + p.RHS.String() + "}"
}

// Params are the requested block parameters before clamping.
type Params struct {
	M0, N0, K0, V0, H0 int

	LHSInterleave   bool
	RHSInterleave   bool
	LHSTranspose    bool
	RHSTranspose    bool
	ExportToTexture bool
}

// ConfigureLHSRHS builds the descriptor pair for an m x n output. V0 and H0
// are clamped so no more blocks are requested than the shape can fill, and
// never fewer than one.
func ConfigureLHSRHS(m, n int, p Params) (LHSInfo, RHSInfo, error) {
	if p.M0 <= 0 || p.N0 <= 0 {
		return LHSInfo{}, RHSInfo{}, errors.Wrapf(ErrInvalidArgument, "block size m0=%d n0=%d", p.M0, p.N0)
	}
	v0 := max(min(m/p.M0, p.V0), 1)
	h0 := max(min(n/p.N0, p.H0), 1)

	lhs := LHSInfo{
		M0:         p.M0,
		K0:         p.K0,
		V0:         v0,
		Transpose:  p.LHSTranspose,
		Interleave: p.LHSInterleave,
	}
	rhs := RHSInfo{
		N0:              p.N0,
		K0:              p.K0,
		H0:              h0,
		Transpose:       p.RHSTranspose,
		Interleave:      p.RHSInterleave,
		ExportToTexture: p.ExportToTexture,
	}
	return lhs, rhs, nil
}

// MustConfigure is the positional form used by the calibration tables. It
// panics when m0 or n0 is not positive.
func MustConfigure(m, n, m0, n0, k0, v0, h0 int, lhsInterleave, rhsInterleave, lhsTranspose, rhsTranspose, export bool) Pair {
	lhs, rhs := must.M2(ConfigureLHSRHS(m, n, Params{
		M0: m0, N0: n0, K0: k0, V0: v0, H0: h0,
		LHSInterleave:   lhsInterleave,
		RHSInterleave:   rhsInterleave,
		LHSTranspose:    lhsTranspose,
		RHSTranspose:    rhsTranspose,
		ExportToTexture: export,
	}))
	return Pair{LHS: lhs, RHS: rhs}
}
