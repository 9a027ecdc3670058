package strategy

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

var (
	valhallTable = table{
		dtype.ClassF32: valhallDefault,
		dtype.ClassF16: valhallDefault,
		dtype.ClassQ8:  valhallDefault,
	}
	g77Table = table{
		dtype.ClassF32: valhallDefault,
		dtype.ClassF16: g77F16,
		dtype.ClassQ8:  valhallDefault,
	}
)

func valhallDefault(_ gemm.Shape, rhsConstant bool) gemm.KernelType {
	if rhsConstant {
		return gemm.ReshapedOnlyRHS
	}
	return gemm.Native
}

func g77F16(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.Native
	}
	if s.M == 1 {
		return gemm.ReshapedOnlyRHS
	}
	rMN, rMK, rNK := s.RMN(), s.RMK(), s.RNK()
	workload := s.Workload()

	if rMK <= 0.6817956566810608 {
		if workload <= 801.6000061035156 {
			return gemm.ReshapedOnlyRHS
		}
		if rMN <= 0.0839829258620739 {
			return gemm.ReshapedOnlyRHS
		}
		if rMK <= 0.24917218834161758 {
			return gemm.Reshaped
		}
		if workload <= 2551.75 {
			return gemm.ReshapedOnlyRHS
		}
		if workload <= 5061.574951171875 {
			return gemm.ReshapedOnlyRHS
		}
		return gemm.Reshaped
	}

	if rMK > 4.849947690963745 {
		return gemm.ReshapedOnlyRHS
	}
	if workload <= 17618.4501953125 {
		if workload <= 5224.699951171875 {
			return gemm.ReshapedOnlyRHS
		}
		if rNK <= 0.7933054566383362 {
			return gemm.Reshaped
		}
		return gemm.ReshapedOnlyRHS
	}
	if workload <= 20275.2001953125 || rMK <= 3.07421875 {
		return gemm.Reshaped
	}
	return gemm.ReshapedOnlyRHS
}
