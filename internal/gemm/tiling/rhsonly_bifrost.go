package tiling

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

var (
	g7xRHSOnly = table{
		dtype.ClassF32: g7xRHSOnlyF32,
		dtype.ClassF16: g7xRHSOnlyF16,
		dtype.ClassQ8:  g7xRHSOnlyQ8,
	}
	g51RHSOnly = table{
		dtype.ClassF32: g51RHSOnlyF32,
		dtype.ClassF16: g51RHSOnlyF16,
		dtype.ClassQ8:  g51RHSOnlyQ8,
	}
	g52RHSOnly = table{
		dtype.ClassF32: g52RHSOnlyF32,
		dtype.ClassF16: g52RHSOnlyF16,
		dtype.ClassQ8:  g7xRHSOnlyQ8,
	}
	g76RHSOnly = table{
		dtype.ClassF32: g76RHSOnlyF32,
		dtype.ClassF16: g76RHSOnlyF16,
		dtype.ClassQ8:  g76RHSOnlyQ8,
	}
)

// rhsOnlyTable matches Bifrost targets exactly: G51BIG, G51LIT and G52LIT
// take the G7x defaults.
func rhsOnlyTable(t gpu.Target) table {
	if t.Arch() == gpu.Valhall {
		switch t {
		case gpu.G78:
			return g78RHSOnly
		case gpu.G710, gpu.G610:
			return g710RHSOnly
		case gpu.G715, gpu.G615:
			return g715RHSOnly
		default:
			return g77RHSOnly
		}
	}
	switch t {
	case gpu.G51:
		return g51RHSOnly
	case gpu.G52:
		return g52RHSOnly
	case gpu.G76:
		return g76RHSOnly
	default:
		return g7xRHSOnly
	}
}

func g7xRHSOnlyF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		if s.N <= 2548 {
			return blocks(s, 1, 2, 16, 1, 4, 0, 1, 0, 1)
		}
		return blocks(s, 1, 4, 16, 1, 8, 0, 1, 0, 1)
	}
	return blocks(s, 4, 4, 4, 1, 4, 0, 1, 0, 1)
}

func g7xRHSOnlyF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		if s.N > 2048 {
			return blocks(s, 1, 4, 4, 1, max(s.N/4, 1), 0, 1, 0, 1)
		}
		return blocks(s, 1, 2, 8, 1, max(s.N/2, 1), 0, 1, 0, 1)
	}
	return blocks(s, 4, 4, 4, 1, 4, 0, 1, 0, 1)
}

func g7xRHSOnlyQ8(s gemm.Shape, c Caps) gemm.Pair {
	if c.DotProductSupported() {
		if s.M == 1 {
			return blocks(s, 1, 2, 16, 1, max(s.N/2, 1), 0, 1, 0, 1)
		}
		return blocks(s, 4, 4, 16, 1, max(s.N/4, 1), 0, 1, 0, 1)
	}
	h0 := max(min(s.N/2, 128), 1)
	if s.M == 1 {
		return blocks(s, 1, 2, 4, 1, h0, 0, 1, 0, 1)
	}
	return blocks(s, 4, 2, 16, 1, h0, 0, 1, 0, 1)
}

func g51RHSOnlyF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		n0 := 4
		if s.N < 1280 {
			n0 = 2
		}
		return blocks(s, 1, n0, 4, 1, max(s.N/n0, 1), 0, 1, 0, 1)
	}
	return blocks(s, 4, 4, 4, 1, 2, 0, 1, 0, 1)
}

func g51RHSOnlyF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		n0 := 4
		if s.N < 1280 {
			n0 = 2
		}
		return blocks(s, 1, n0, 8, 1, max(s.N/n0, 1), 0, 1, 0, 1)
	}
	return blocks(s, 4, 4, 4, 1, 2, 0, 1, 0, 1)
}

func g51RHSOnlyQ8(s gemm.Shape, _ Caps) gemm.Pair {
	h0 := max(s.N/2, 1)
	if s.M == 1 {
		return blocks(s, 1, 4, 16, 1, h0, 0, 1, 0, 1)
	}
	return blocks(s, 4, 2, 16, 1, h0, 0, 1, 0, 1)
}

func g52RHSOnlyF32(s gemm.Shape, c Caps) gemm.Pair {
	if s.M == 1 {
		if s.RNK() <= 0.4664 {
			return blocks(s, 1, 2, 16, 1, 16, 0, 1, 0, 1, 0)
		}
		return choose(s,
			blocks(s, 1, 4, 8, 1, 16, 0, 1, 0, 1, 1),
			blocks(s, 1, 4, 8, 1, 16, 0, 1, 0, 1, 0),
			dtype.F32, c)
	}
	if s.Workload() <= 274.4 {
		return blocks(s, 2, 2, 4, 1, 16, 0, 0, 0, 1, 0)
	}
	return choose(s,
		blocks(s, 4, 4, 4, 1, 2, 0, 0, 0, 1, 1),
		blocks(s, 4, 4, 4, 1, 2, 0, 0, 0, 1, 0),
		dtype.F32, c)
}

func g52RHSOnlyF16(s gemm.Shape, c Caps) gemm.Pair {
	rMN, rMK, rNK, w := s.RMN(), s.RMK(), s.RNK(), s.Workload()

	if s.M == 1 {
		buf := blocks(s, 1, 4, 16, 1, 16, 0, 1, 0, 0, 0)
		img := blocks(s, 1, 4, 16, 1, 16, 0, 1, 0, 0, 1)
		narrow := blocks(s, 1, 2, 16, 1, 32, 0, 1, 0, 1, 0)
		if rMK <= 0.0026 {
			if rNK <= 0.4664 {
				return narrow
			}
			return choose(s, img, buf, dtype.F16, c)
		}
		if rMK <= 0.0148 {
			return narrow
		}
		return choose(s, img, buf, dtype.F16, c)
	}

	buf := blocks(s, 5, 8, 4, 1, 2, 0, 0, 0, 0, 0)
	img := blocks(s, 5, 4, 4, 1, 2, 0, 0, 0, 0, 1)
	small := blocks(s, 2, 2, 8, 1, 16, 0, 0, 0, 1, 0)
	if w <= 362.6 {
		return small
	}
	if rMN <= 22.6067 {
		if w <= 708.8 {
			return choose(s, img, buf, dtype.F16, c)
		}
		return blocks(s, 5, 8, 2, 1, 16, 0, 0, 0, 0, 0)
	}
	if rNK <= 0.0917 {
		return small
	}
	return choose(s, img, buf, dtype.F16, c)
}

// g76RHSOnlyF32 keeps the buffer path for vector and small-workload
// problems even when a texture would fit.
func g76RHSOnlyF32(s gemm.Shape, c Caps) gemm.Pair {
	m, n, b := s.M, s.N, s.B
	big := m*n*b/16 >= 2048

	if m == 1 {
		if n >= 8192 {
			return blocks(s, 1, 4, 8, 1, max(n/4, 1), 0, 1, 0, 1, 0)
		}
		h0 := max(n/2, 1)
		if n <= 204 {
			return blocks(s, 1, 2, 16, 1, h0, 0, 1, 0, 1, 0)
		}
		return blocks(s, 1, 2, 8, 1, h0, 0, 1, 0, 1, 0)
	}

	h0 := max(min(n/4, 16), 1)
	var img, buf gemm.Pair
	if big {
		buf = blocks(s, 4, 4, 4, 1, h0, 0, 1, 0, 1)
		img = blocks(s, 4, 4, 4, 1, h0, 0, 1, 0, 0, 1)
	} else {
		buf = blocks(s, 2, 4, 8, 1, h0, 0, 1, 0, 1)
		img = blocks(s, 2, 4, 8, 1, h0, 0, 1, 0, 1, 1)
	}
	if !big && n < 128 {
		return buf
	}
	return choose(s, img, buf, dtype.F32, c)
}

func g76RHSOnlyF16(s gemm.Shape, c Caps) gemm.Pair {
	if s.M == 1 {
		return blocks(s, 1, 2, 16, 1, 32, 0, 1, 0, 1, 0)
	}
	rMN, w := s.RMN(), s.Workload()

	buf := blocks(s, 5, 2, 8, 1, 16, 0, 0, 0, 0, 0)
	if w <= 7449.6 {
		switch {
		case w <= 691.6:
			return blocks(s, 2, 2, 8, 1, 8, 0, 0, 0, 0, 0)
		case w <= 4155.2:
			return buf
		default:
			return blocks(s, 5, 8, 2, 1, 32, 0, 0, 0, 0, 0)
		}
	}
	if w <= 16300.8 {
		if rMN <= 44.56 {
			return choose(s, blocks(s, 8, 4, 4, 1, 1, 0, 1, 0, 0, 1), buf, dtype.F16, c)
		}
		return buf
	}
	return choose(s, blocks(s, 5, 4, 4, 1, 2, 0, 1, 0, 0, 1), buf, dtype.F16, c)
}

func g76RHSOnlyQ8(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return blocks(s, 1, 2, 16, 1, max(s.N/2, 1), 0, 1, 0, 1)
	}
	return blocks(s, 4, 4, 16, 1, 2, 0, 1, 0, 1)
}
