package tiling

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

var (
	g7xReshaped = table{
		dtype.ClassF32: g7xReshapedF32,
		dtype.ClassF16: g7xReshapedF16,
		dtype.ClassQ8:  g7xReshapedQ8,
	}
	g52Reshaped = table{
		dtype.ClassF32: g52ReshapedF32,
		dtype.ClassF16: g52ReshapedF16,
		dtype.ClassQ8:  g7xReshapedQ8,
	}
	g76Reshaped = table{
		dtype.ClassF32: g76ReshapedF32,
		dtype.ClassF16: g76ReshapedF16,
		dtype.ClassQ8:  g76ReshapedQ8,
	}
)

func reshapedTable(t gpu.Target) table {
	if t.Arch() == gpu.Valhall {
		if t == gpu.G78 {
			return g78Reshaped
		}
		return g77Reshaped
	}
	switch t {
	case gpu.G52:
		return g52Reshaped
	case gpu.G76:
		return g76Reshaped
	default:
		return g7xReshaped
	}
}

func g7xReshapedF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 8, 16, 16, 1, 0, 0, 1)
	}
	return blocks(s, 5, 4, 4, 2, 16, 0, 1, 0, 1)
}

func g7xReshapedF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 8, 8, 2, 1, 1, 1, 0)
	}
	return blocks(s, 4, 8, 8, 4, 2, 1, 1, 1, 0)
}

func g7xReshapedQ8(s gemm.Shape, c Caps) gemm.Pair {
	if c.DotProductSupported() {
		if s.N <= 4 {
			return blocks(s, 4, 2, 16, 2, 2, 1, 0, 0, 1)
		}
		return blocks(s, 4, 4, 16, 2, 2, 1, 0, 0, 1)
	}
	if s.N <= 4 {
		return blocks(s, 4, 2, 8, 2, 2, 1, 0, 0, 1)
	}
	return blocks(s, 6, 4, 4, 2, 2, 1, 1, 0, 1)
}

func g52ReshapedF32(s gemm.Shape, c Caps) gemm.Pair {
	rMN, rMK, rNK, w := s.RMN(), s.RMK(), s.RNK(), s.Workload()

	img := func(h0 int) gemm.Pair {
		return choose(s,
			blocks(s, 4, 4, 4, 4, h0, 1, 1, 0, 1, 1),
			blocks(s, 4, 4, 4, 4, h0, 1, 1, 0, 1, 0),
			dtype.F32, c)
	}

	if w <= 274.4 {
		if rNK <= 0.7461 && rMN <= 21.1667 {
			return blocks(s, 4, 2, 4, 4, 4, 0, 1, 1, 0, 0)
		}
		return img(2)
	}
	if rMK <= 17.3926 {
		if w <= 542.4 {
			return img(2)
		}
		return img(1)
	}
	if rNK <= 0.5463 && w > 11767.6001 {
		return img(1)
	}
	return img(2)
}

func g52ReshapedF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.Workload() <= 323.4 {
		return blocks(s, 2, 2, 8, 4, 8, 0, 0, 0, 1)
	}
	return blocks(s, 4, 8, 4, 2, 2, 1, 1, 1, 0)
}

func g76ReshapedF32(s gemm.Shape, c Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 8, 16, 16, 1, 0, 0, 1)
	}
	return choose(s,
		blocks(s, 4, 4, 4, 2, 8, 1, 0, 0, 1, 1),
		blocks(s, 4, 4, 2, 8, 16, 0, 0, 0, 1, 0),
		dtype.F32, c)
}

func g76ReshapedF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 8, 8, 2, 1, 1, 1, 0)
	}
	return blocks(s, 4, 4, 8, 4, 2, 1, 1, 1, 0)
}

func g76ReshapedQ8(s gemm.Shape, _ Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 16, 4, 1, 0, 0, 0, 1)
	}
	return blocks(s, 4, 4, 16, 2, 2, 0, 1, 0, 1)
}
