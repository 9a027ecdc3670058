package strategy

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

var (
	bifrostTable = table{
		dtype.ClassF32: bifrostF32,
		dtype.ClassF16: bifrostF16,
		dtype.ClassQ8:  bifrostQ8,
	}
	g71Table = table{
		dtype.ClassF32: bifrostF32,
		dtype.ClassF16: g71F16,
		dtype.ClassQ8:  bifrostQ8,
	}
	g52Table = table{
		dtype.ClassF32: g52F32,
		dtype.ClassF16: g52F16,
		dtype.ClassQ8:  bifrostQ8,
	}
	g76Table = table{
		dtype.ClassF32: g76F32,
		dtype.ClassF16: g76F16,
		dtype.ClassQ8:  bifrostQ8,
	}
)

func bifrostF32(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.NativeV1
	}
	m, n, k := s.M, s.N, s.K

	kt := gemm.NativeV1
	switch {
	case m > 1 && n < 16:
		kt = gemm.ReshapedV1
	case m == 1:
		kt = gemm.ReshapedOnlyRHS
	case k > 256 && m > 4:
		const (
			alpha = float32(3.2)
			fact0 = float32(1.51)
			fact1 = float32(1.66)
			ops   = float32(12.0)
		)
		scale := float32(1.0)
		if k > 1024 {
			scale = 1.07
		}
		fn := float32(n)
		if alpha+(fn*fact0)/ops < (fact1*fn*scale)/ops {
			kt = gemm.ReshapedV1
		}
	}

	workload := float32(m*n) / 20.0
	if workload > 1600.0 && kt == gemm.ReshapedV1 {
		kt = gemm.Reshaped
	}
	return kt
}

func bifrostF16(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	switch {
	case !rhsConstant:
		return gemm.NativeV1
	case s.M == 1:
		return gemm.ReshapedOnlyRHS
	default:
		return gemm.Reshaped
	}
}

func bifrostQ8(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	switch {
	case !rhsConstant:
		return gemm.Native
	case s.M == 1:
		return gemm.ReshapedOnlyRHS
	default:
		return gemm.Reshaped
	}
}

func g71F16(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.NativeV1
	}
	if s.M == 1 {
		if s.N > s.K {
			return gemm.NativeV1
		}
		return gemm.ReshapedOnlyRHS
	}
	return gemm.Reshaped
}

func g76F32(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.NativeV1
	}
	if s.M == 1 {
		return gemm.ReshapedOnlyRHS
	}
	m, n, k := s.M, s.N, s.K

	if k <= 496 {
		if n <= 544 {
			return gemm.ReshapedOnlyRHS
		}
		return gemm.Reshaped
	}
	if k > 588 {
		return gemm.Reshaped
	}
	if k > 552 {
		return gemm.ReshapedOnlyRHS
	}
	if m <= 148 {
		return gemm.ReshapedOnlyRHS
	}
	if m <= 278 {
		return gemm.Reshaped
	}
	return gemm.ReshapedOnlyRHS
}

func g52F32(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.NativeV1
	}
	if s.M == 1 {
		return gemm.ReshapedOnlyRHS
	}
	rMN, rMK, rNK := s.RMN(), s.RMK(), s.RNK()

	if s.Workload() <= 274.4000 {
		if rNK > 0.7461 {
			return gemm.ReshapedOnlyRHS
		}
		if rMN <= 21.1667 {
			return gemm.ReshapedOnlyRHS
		}
		if rMK <= 2.1667 {
			return gemm.Reshaped
		}
		return gemm.ReshapedOnlyRHS
	}
	if rMK <= 1.1667 {
		return gemm.Reshaped
	}
	if rMN <= 0.3750 {
		return gemm.ReshapedOnlyRHS
	}
	return gemm.Reshaped
}

func g76F16(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.NativeV1
	}
	if s.M == 1 {
		return gemm.ReshapedOnlyRHS
	}
	m, k := s.M, s.K
	rMN, rNK := s.RMN(), s.RNK()

	if k <= 212 {
		return gemm.ReshapedOnlyRHS
	}
	if rNK <= 0.4990234375 {
		if k <= 1392 || m <= 325 {
			return gemm.ReshapedOnlyRHS
		}
		return gemm.Reshaped
	}
	if k <= 471 {
		return gemm.ReshapedOnlyRHS
	}
	if rMN <= 0.04475911520421505 {
		return gemm.Reshaped
	}
	return gemm.ReshapedOnlyRHS
}

func g52F16(s gemm.Shape, rhsConstant bool) gemm.KernelType {
	if !rhsConstant {
		return gemm.NativeV1
	}
	if s.M == 1 {
		return gemm.ReshapedOnlyRHS
	}
	m, n, k, b := float32(s.M), float32(s.N), float32(s.K), float32(s.B)

	if n <= 127.0000 {
		if n <= 63.5000 {
			return gemm.ReshapedOnlyRHS
		}
		if m > 3616.0000 {
			return gemm.Reshaped
		}
		if b > 18.5000 || m <= 2970.5000 || k <= 104.0000 {
			return gemm.ReshapedOnlyRHS
		}
		return gemm.Reshaped
	}
	if m <= 12.5000 {
		return gemm.ReshapedOnlyRHS
	}
	if k > 104.0000 {
		return gemm.Reshaped
	}
	if b > 18.5000 || m <= 490.0000 {
		return gemm.ReshapedOnlyRHS
	}
	return gemm.Reshaped
}
