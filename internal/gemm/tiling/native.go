package tiling

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

// Native kernels never reshape, so every flag stays 0 and V0/H0 are 1.
// Float GEMM on Midgard and Bifrost f16 only run the fixed-block NativeV1
// kernel (see Legacy), so those tables carry no float entries.
var (
	midgardNative = table{
		dtype.ClassQ8: midgardNativeQ8,
	}
	g71Native = table{
		dtype.ClassF32: g71NativeF32,
		dtype.ClassQ8:  g71NativeQ8,
	}
	g76Native = table{
		dtype.ClassF32: g76NativeF32,
		dtype.ClassQ8:  g76NativeQ8,
	}
	g7xNative = table{
		dtype.ClassF32: g7xNativeF32,
		dtype.ClassQ8:  g7xNativeQ8,
	}
	g77Native = table{
		dtype.ClassF32: g77NativeF32,
		dtype.ClassF16: g77NativeF16,
		dtype.ClassQ8:  g77NativeQ8,
	}
)

func nativeTable(t gpu.Target) table {
	switch t.Arch() {
	case gpu.Bifrost:
		switch t {
		case gpu.G71:
			return g71Native
		case gpu.G76:
			return g76Native
		default:
			return g7xNative
		}
	case gpu.Valhall:
		return g77Native
	default:
		return midgardNative
	}
}

func midgardNativeQ8(s gemm.Shape, _ Caps) gemm.Pair {
	return blocks(s, min(s.M, 4), min(s.N, 4), 2, 1, 1)
}

// vectorNative is the m == 1 ladder most native tables share: wider N0 as
// the output row grows.
func vectorNative(s gemm.Shape, k0, mid, wide int) gemm.Pair {
	switch {
	case s.N < mid:
		return blocks(s, 1, 2, k0, 1, 1)
	case s.N < wide:
		return blocks(s, 1, 4, k0, 1, 1)
	default:
		return blocks(s, 1, 8, k0, 1, 1)
	}
}

func g71NativeF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return vectorNative(s, 4, 2048, 8192)
	}
	return blocks(s, 5, 4, 2, 1, 1)
}

func g71NativeQ8(s gemm.Shape, c Caps) gemm.Pair {
	if c.DotProductSupported() {
		if s.M == 1 {
			return vectorNative(s, 16, 2048, 16384)
		}
		if s.M < 64 {
			return blocks(s, 2, 2, 16, 1, 1)
		}
		return blocks(s, 4, 4, 16, 1, 1)
	}
	if s.M == 1 {
		if s.N < 8192 {
			return blocks(s, 1, 4, 4, 1, 1)
		}
		return blocks(s, 1, 8, 2, 1, 1)
	}
	return blocks(s, 6, 4, 4, 1, 1)
}

func g76NativeF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		switch {
		case s.N < 2048:
			return blocks(s, 1, 2, 16, 1, 1)
		case s.N < 16384:
			return blocks(s, 1, 4, 8, 1, 1)
		default:
			return blocks(s, 1, 8, 4, 1, 1)
		}
	}
	if s.M < 64 {
		return blocks(s, 2, 4, 8, 1, 1)
	}
	return blocks(s, 4, 4, 4, 1, 1)
}

func g76NativeQ8(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return vectorNative(s, 16, 2048, 16384)
	}
	if s.M < 64 {
		return blocks(s, 2, 2, 16, 1, 1)
	}
	return blocks(s, 4, 4, 16, 1, 1)
}

func g7xNativeF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return vectorNative(s, 4, 2048, 8192)
	}
	return blocks(s, min(s.M, 4), min(s.N, 4), 4, 1, 1)
}

func g7xNativeQ8(s gemm.Shape, c Caps) gemm.Pair {
	if c.DotProductSupported() {
		if s.M == 1 {
			return vectorNative(s, 16, 2048, 16384)
		}
		return blocks(s, 4, 4, 16, 1, 1)
	}
	return blocks(s, min(s.M, 4), min(s.N, 4), 4, 1, 1)
}

func g77NativeF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return vectorNative(s, 4, 2048, 8192)
	}
	return blocks(s, 5, 4, 2, 1, 1)
}

func g77NativeF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return vectorNative(s, 4, 2048, 8192)
	}
	return blocks(s, 4, 8, 2, 1, 1)
}

func g77NativeQ8(s gemm.Shape, c Caps) gemm.Pair {
	return g71NativeQ8(s, c)
}
