package gemm

import (
	"github.com/pkg/errors"
)

// pow2or3 reports whether v is a power of two or 3, within [lo, hi].
func pow2or3(v, lo, hi int) bool {
	if v < lo || v > hi {
		return false
	}
	return v == 3 || v&(v-1) == 0
}

// ValidateKernelConfig checks the block sizes the GEMM kernel of type kt
// can be compiled with.
func ValidateKernelConfig(kt KernelType, lhs LHSInfo, rhs RHSInfo) error {
	if kt.Legacy() {
		return validateLegacy(kt, lhs, rhs)
	}
	switch kt.Config() {
	case ConfigNative:
		if lhs.M0 < 1 || lhs.M0 > 8 {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: m0=%d not in [1,8]", kt, lhs.M0)
		}
		if !pow2or3(rhs.K0, 1, 16) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: k0=%d not in {1,2,3,4,8,16}", kt, rhs.K0)
		}
		if !pow2or3(rhs.N0, 1, 16) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: n0=%d not in {1,2,3,4,8,16}", kt, rhs.N0)
		}
		if rhs.ExportToTexture {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: texture export not supported", kt)
		}

	case ConfigReshaped:
		if lhs.K0 != rhs.K0 {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: lhs k0=%d != rhs k0=%d", kt, lhs.K0, rhs.K0)
		}
		if lhs.Transpose == rhs.Transpose {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: lhs and rhs transpose must differ", kt)
		}
		if !pow2or3(lhs.K0, 2, 16) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: k0=%d not in {2,3,4,8,16}", kt, lhs.K0)
		}
		if lhs.M0 < 2 || lhs.M0 > 8 {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: m0=%d not in [2,8]", kt, lhs.M0)
		}
		if lhs.Transpose && !pow2or3(lhs.M0, 2, 8) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: transposed m0=%d not in {2,3,4,8}", kt, lhs.M0)
		}
		if rhs.Transpose && !pow2or3(rhs.N0, 2, 16) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: transposed n0=%d not in {2,3,4,8,16}", kt, rhs.N0)
		}

	case ConfigReshapedOnlyRHS:
		if lhs.M0 < 1 || lhs.M0 > 8 {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: m0=%d not in [1,8]", kt, lhs.M0)
		}
		if !pow2or3(rhs.K0, 2, 16) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: k0=%d not in {2,3,4,8,16}", kt, rhs.K0)
		}
		if !pow2or3(rhs.N0, 2, 16) {
			return errors.Wrapf(ErrBlockSizeUnsupported, "%s: n0=%d not in {2,3,4,8,16}", kt, rhs.N0)
		}
	}
	return nil
}

// validateLegacy checks the fixed V1 blocks: one OpenCL vector of RHS
// columns and at most four rows per step.
func validateLegacy(kt KernelType, lhs LHSInfo, rhs RHSInfo) error {
	if lhs.M0 < 1 || lhs.M0 > 4 {
		return errors.Wrapf(ErrBlockSizeUnsupported, "%s: m0=%d not in [1,4]", kt, lhs.M0)
	}
	if rhs.N0 < 2 || rhs.N0 > 16 || rhs.N0&(rhs.N0-1) != 0 {
		return errors.Wrapf(ErrBlockSizeUnsupported, "%s: n0=%d not in {2,4,8,16}", kt, rhs.N0)
	}
	if rhs.K0 != 1 {
		return errors.Wrapf(ErrBlockSizeUnsupported, "%s: rhs k0=%d, want 1", kt, rhs.K0)
	}
	if rhs.ExportToTexture {
		return errors.Wrapf(ErrBlockSizeUnsupported, "%s: texture export not supported", kt)
	}
	return nil
}
