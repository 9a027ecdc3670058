package tiling

import (
	"github.com/pkg/errors"

	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

// vectorWidth is the widest OpenCL vector the V1 kernels load, in bytes.
const vectorWidth = 16

// Legacy returns the fixed block parameters of the V1 kernels. They are
// not calibrated per target: NativeV1 steps over the output in
// (min(m,4), 16 bytes) windows and ReshapedV1 interleaves 4x4 LHS blocks
// against 1xW RHS rows, with wider multipliers on Bifrost.
func Legacy(target gpu.Target, kt gemm.KernelType, s gemm.Shape, dt dtype.DataType) (gemm.Pair, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return gemm.Pair{}, err
	}
	size := dt.Size()
	if size == 0 || size > vectorWidth {
		return gemm.Pair{}, errors.Wrapf(gemm.ErrDataTypeUnsupported, "%s for %s", kt, dt)
	}
	n0 := vectorWidth / size
	bifrost := target.Arch() == gpu.Bifrost

	switch kt {
	case gemm.NativeV1:
		if bifrost && dt == dtype.F32 {
			n0 = 4
			if s.M == 1 && s.N <= 1000 {
				n0 = 2
			}
		}
		return gemm.Pair{
			LHS: gemm.LHSInfo{M0: min(s.M, 4), K0: 1, V0: 1},
			RHS: gemm.RHSInfo{N0: n0, K0: 1, H0: 1},
		}, nil

	case gemm.ReshapedV1:
		v0, h0 := 1, 1
		if bifrost {
			v0, h0 = 2, 4
		}
		return gemm.Pair{
			LHS: gemm.LHSInfo{M0: 4, K0: 4, V0: v0, Interleave: true, Transpose: true},
			RHS: gemm.RHSInfo{N0: n0, K0: 1, H0: h0},
		}, nil

	default:
		return gemm.Pair{}, errors.Wrapf(gemm.ErrInvalidArgument, "%s has calibrated tiling", kt)
	}
}
