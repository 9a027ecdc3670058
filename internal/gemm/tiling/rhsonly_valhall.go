package tiling

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

var (
	g77RHSOnly = table{
		dtype.ClassF32: g77RHSOnlyF32,
		dtype.ClassF16: g77RHSOnlyF16,
		dtype.ClassQ8:  g77RHSOnlyQ8,
	}
	g78RHSOnly = table{
		dtype.ClassF32: g78RHSOnlyF32,
		dtype.ClassF16: g78RHSOnlyF16,
		dtype.ClassQ8:  g77RHSOnlyQ8,
	}
	g710RHSOnly = table{
		dtype.ClassF32: g77RHSOnlyF32,
		dtype.ClassF16: g710RHSOnlyF16,
		dtype.ClassQ8:  g77RHSOnlyQ8,
	}
	// G715 and G615 prefer the matrix-multiply extension kernel when its
	// blocks fit; that kernel is not modelled, so they take the trees it
	// falls back to.
	g715RHSOnly = table{
		dtype.ClassF32: g77RHSOnlyF32,
		dtype.ClassF16: g78RHSOnlyF16,
		dtype.ClassQ8:  g77RHSOnlyQ8,
	}
)

func g77RHSOnlyF32(s gemm.Shape, c Caps) gemm.Pair {
	rMN, rMK := s.RMN(), s.RMK()

	if s.M == 1 {
		if rMK <= 0.0064484127797186375 {
			if rMN <= 0.0028273810748942196 {
				return choose(s,
					blocks(s, 1, 4, 8, 1, 16, 0, 1, 0, 0, 1),
					blocks(s, 1, 4, 4, 1, max(s.N/4, 1), 0, 1, 0, 1, 0),
					dtype.F32, c)
			}
			return blocks(s, 1, 2, 16, 1, 8, 0, 1, 0, 0, 0)
		}
		if rMK <= 0.020312500186264515 {
			return blocks(s, 1, 2, 16, 1, 4, 0, 1, 0, 0, 0)
		}
		return blocks(s, 1, 4, 16, 1, 16, 0, 1, 0, 1, 0)
	}

	w := s.Workload()
	buf := blocks(s, 2, 2, 4, 1, 8, 0, 1, 0, 1, 0)
	img := blocks(s, 2, 4, 8, 1, 2, 0, 0, 0, 1, 1)
	if w <= 1999.2000122070312 {
		if w <= 747.1999816894531 {
			return buf
		}
		return choose(s, img, buf, dtype.F32, c)
	}
	if rMN <= 0.03348214365541935 {
		if rMK <= 0.028125000186264515 {
			return buf
		}
		return choose(s, img, buf, dtype.F32, c)
	}
	return choose(s,
		blocks(s, 4, 4, 4, 1, 2, 0, 1, 0, 0, 1),
		blocks(s, 4, 4, 4, 1, 16, 0, 1, 0, 1, 0),
		dtype.F32, c)
}

// f16Tables holds measured f16 winners per shape class. Each best table
// may request a texture; the matching fallback is the best buffer-only
// configuration for the same shapes.
type f16Tables struct {
	vector          gemm.ConfigTable
	nSmallBest      gemm.ConfigTable
	nSmallFallback  gemm.ConfigTable
	tallBest        gemm.ConfigTable
	tallFallback    gemm.ConfigTable
	wideBest        gemm.ConfigTable
	wideFallback    gemm.ConfigTable
	squareBest      gemm.ConfigTable
	squareFallback  gemm.ConfigTable
	batchedBest     gemm.ConfigTable
	batchedFallback gemm.ConfigTable
}

// pick returns the (best, fallback) tables for s.
func (t *f16Tables) pick(s gemm.Shape) (best, fallback gemm.ConfigTable) {
	const (
		tallRatio = float32(10)
		wideRatio = float32(0.1)
		smallN    = 4
	)
	if s.B != 1 {
		return t.batchedBest, t.batchedFallback
	}
	ratio := s.RMN()
	switch {
	case s.M == 1:
		// Vector rows never export, so no fallback is needed.
		return t.vector, t.vector
	case s.N <= smallN && ratio > tallRatio:
		return t.nSmallBest, t.nSmallFallback
	case ratio > tallRatio:
		return t.tallBest, t.tallFallback
	case ratio < wideRatio:
		return t.wideBest, t.wideFallback
	default:
		return t.squareBest, t.squareFallback
	}
}

// configure looks s up in the best and fallback tables and keeps the best
// one when its RHS fits in a texture.
func (t *f16Tables) configure(s gemm.Shape, c Caps) gemm.Pair {
	best, fallback := t.pick(s)
	return choose(s, nearest(s, best), nearest(s, fallback), dtype.F16, c)
}

var g77F16 = &f16Tables{
	vector: gemm.ConfigTable{
		{1, 8984, 640, 1, 1, 8, 8, 1, 0, 1, 1, 1, 1, 0},
		{1, 420, 392, 1, 1, 2, 8, 1, 0, 1, 0, 1, 0, 0},
		{1, 644, 5288, 1, 1, 2, 8, 1, 0, 1, 0, 1, 0, 0},
		{1, 6512, 6404, 1, 1, 4, 8, 1, 0, 1, 0, 1, 0, 0},
		{1, 5304, 640, 1, 1, 4, 4, 1, 0, 1, 0, 1, 1, 0},
		{1, 1352, 1520, 1, 1, 2, 8, 1, 0, 1, 1, 1, 1, 0},
		{1, 4096, 25088, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{1, 732, 8988, 1, 1, 2, 8, 1, 0, 1, 0, 1, 0, 0},
	},
	nSmallBest: gemm.ConfigTable{
		{102400, 4, 96, 1, 2, 2, 16, 1, 4, 1, 1, 1, 1, 0},
		{102400, 2, 96, 1, 1, 2, 16, 1, 0, 1, 0, 1, 1, 1},
		{16384, 4, 128, 1, 1, 2, 16, 1, 0, 1, 0, 1, 1, 1},
		{16384, 2, 128, 1, 1, 2, 16, 1, 0, 1, 1, 1, 1, 1},
	},
	nSmallFallback: gemm.ConfigTable{
		{102400, 4, 96, 1, 2, 2, 16, 1, 4, 1, 1, 1, 1, 0},
		{102400, 2, 96, 1, 1, 2, 16, 1, 0, 1, 1, 1, 1, 0},
		{16384, 4, 128, 1, 2, 2, 16, 1, 2, 1, 1, 1, 1, 0},
		{16384, 2, 128, 1, 1, 2, 16, 1, 0, 1, 1, 1, 1, 0},
	},
	tallBest: gemm.ConfigTable{
		{25584, 88, 16, 1, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
		{25584, 16, 68, 1, 4, 4, 8, 1, 16, 1, 1, 1, 0, 1},
		{369664, 32, 28, 1, 5, 4, 4, 1, 64, 1, 1, 1, 0, 1},
		{65792, 44, 24, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{23036, 56, 736, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{90968, 40, 600, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{8944, 32, 776, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{50176, 64, 300, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{16544, 104, 160, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{12604, 60, 160, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{29584, 32, 28, 1, 4, 4, 4, 1, 128, 1, 1, 1, 0, 0},
		{12544, 32, 27, 1, 2, 8, 8, 1, 128, 1, 1, 1, 0, 0},
		{2688, 136, 1492, 1, 8, 4, 4, 1, 128, 1, 1, 1, 0, 0},
		{3728, 96, 196, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
	},
	tallFallback: gemm.ConfigTable{
		{25584, 88, 16, 1, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
		{25584, 16, 68, 1, 2, 4, 8, 1, 4, 1, 1, 1, 0, 0},
		{369664, 32, 28, 1, 5, 4, 4, 1, 256, 1, 1, 1, 0, 0},
		{65792, 44, 24, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{23036, 56, 736, 1, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{90968, 40, 600, 1, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{8944, 32, 776, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 0},
		{50176, 64, 300, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{16544, 104, 160, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 0},
		{12604, 60, 160, 1, 4, 4, 8, 1, 256, 1, 1, 1, 0, 0},
		{29584, 32, 28, 1, 4, 4, 4, 1, 128, 1, 1, 1, 0, 0},
		{12544, 32, 27, 1, 2, 8, 8, 1, 128, 1, 1, 1, 0, 0},
		{2688, 136, 1492, 1, 8, 4, 4, 1, 128, 1, 1, 1, 0, 0},
		{3728, 96, 196, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
	},
	wideBest: gemm.ConfigTable{
		{24, 488, 88, 1, 2, 4, 16, 1, 4, 1, 1, 1, 0, 0},
		{49, 1024, 512, 1, 4, 4, 8, 1, 128, 1, 1, 1, 0, 1},
		{49, 1024, 1024, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
	},
	wideFallback: gemm.ConfigTable{
		{24, 488, 88, 1, 2, 4, 16, 1, 4, 1, 1, 1, 0, 0},
		{49, 1024, 512, 1, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{49, 1024, 1024, 1, 4, 4, 8, 1, 256, 1, 1, 1, 0, 0},
	},
	squareBest: gemm.ConfigTable{
		{72, 92, 136, 1, 2, 2, 8, 1, 128, 1, 1, 1, 1, 0},
		{268, 824, 5076, 1, 4, 8, 4, 1, 256, 1, 1, 1, 0, 0},
		{180, 420, 952, 1, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{1000, 152, 304, 1, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{272, 400, 2116, 1, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{196, 512, 512, 1, 5, 4, 4, 1, 64, 1, 1, 1, 0, 1},
		{24, 88, 236, 1, 2, 2, 8, 1, 64, 1, 1, 1, 1, 0},
		{24, 88, 488, 1, 2, 2, 8, 1, 64, 1, 1, 1, 1, 0},
	},
	squareFallback: gemm.ConfigTable{
		{72, 92, 136, 1, 2, 2, 8, 1, 128, 1, 1, 1, 1, 0},
		{268, 824, 5076, 1, 4, 8, 4, 1, 256, 1, 1, 1, 0, 0},
		{180, 420, 952, 1, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{1000, 152, 304, 1, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{272, 400, 2116, 1, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{196, 512, 512, 1, 5, 4, 4, 1, 256, 1, 1, 1, 0, 0},
		{24, 88, 236, 1, 2, 2, 8, 1, 64, 1, 1, 1, 1, 0},
		{24, 88, 488, 1, 2, 2, 8, 1, 64, 1, 1, 1, 1, 0},
	},
	batchedBest: gemm.ConfigTable{
		{3136, 64, 64, 36, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{4096, 48, 32, 36, 4, 4, 8, 1, 64, 1, 1, 1, 0, 1},
		{688, 92, 68, 32, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{24, 464, 412, 24, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{112, 184, 144, 28, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{5776, 64, 32, 36, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{1568, 64, 40, 36, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{2920, 64, 64, 24, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
	},
	batchedFallback: gemm.ConfigTable{
		{3136, 64, 64, 36, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{4096, 48, 32, 36, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{688, 92, 68, 32, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{24, 464, 412, 24, 4, 4, 8, 1, 128, 1, 1, 1, 0, 0},
		{112, 184, 144, 28, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{5776, 64, 32, 36, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{1568, 64, 40, 36, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
		{2920, 64, 64, 24, 4, 8, 4, 1, 64, 1, 1, 1, 0, 0},
	},
}

func g77RHSOnlyF16(s gemm.Shape, c Caps) gemm.Pair {
	return g77F16.configure(s, c)
}

// G710 and G610 share the G77 f32 and q8 trees and have their own f16
// measurements.
var g710F16 = &f16Tables{
	vector: gemm.ConfigTable{
		{1, 8984, 640, 1, 1, 2, 2, 1, 0, 1, 0, 1, 0, 0},
		{1, 420, 392, 1, 1, 2, 8, 1, 0, 1, 0, 1, 0, 0},
		{1, 644, 5288, 1, 1, 2, 8, 1, 0, 1, 0, 1, 0, 0},
		{1, 6512, 6404, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
		{1, 5304, 640, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
		{1, 1352, 1520, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
		{1, 4096, 25088, 1, 1, 2, 8, 1, 0, 1, 0, 1, 1, 0},
		{1, 732, 8988, 1, 1, 2, 8, 1, 0, 1, 0, 1, 0, 0},
	},
	nSmallBest: gemm.ConfigTable{
		{102400, 4, 96, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{102400, 2, 96, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{16384, 4, 128, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{16384, 2, 128, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
	},
	nSmallFallback: gemm.ConfigTable{
		{102400, 4, 96, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{102400, 2, 96, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{16384, 4, 128, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
		{16384, 2, 128, 1, 1, 2, 16, 1, 0, 1, 0, 1, 0, 0},
	},
	tallBest: gemm.ConfigTable{
		{25584, 88, 16, 1, 4, 8, 4, 1, 4, 1, 1, 1, 0, 0},
		{25584, 16, 68, 1, 2, 4, 16, 1, 8, 1, 1, 1, 0, 1},
		{369664, 32, 28, 1, 2, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{65792, 44, 24, 1, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
		{23036, 56, 736, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{90968, 40, 600, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{8944, 32, 776, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{2688, 136, 1492, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{50176, 64, 300, 1, 4, 8, 4, 1, 8, 1, 1, 1, 0, 1},
		{16544, 104, 160, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{12604, 60, 160, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{3728, 96, 196, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{29584, 32, 28, 1, 2, 8, 4, 1, 16, 1, 1, 1, 0, 0},
		{12544, 32, 27, 1, 2, 8, 8, 1, 16, 1, 1, 1, 0, 0},
	},
	tallFallback: gemm.ConfigTable{
		{25584, 88, 16, 1, 4, 8, 4, 1, 4, 1, 1, 1, 0, 0},
		{25584, 16, 68, 1, 2, 4, 8, 1, 4, 1, 1, 1, 1, 0},
		{369664, 32, 28, 1, 2, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{65792, 44, 24, 1, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
		{23036, 56, 736, 1, 4, 8, 4, 1, 16, 1, 1, 1, 0, 0},
		{90968, 40, 600, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 0},
		{8944, 32, 776, 1, 2, 8, 8, 1, 16, 1, 1, 1, 0, 0},
		{2688, 136, 1492, 1, 4, 4, 8, 1, 8, 1, 1, 1, 0, 0},
		{50176, 64, 300, 1, 4, 8, 4, 1, 128, 1, 1, 1, 0, 0},
		{16544, 104, 160, 1, 4, 8, 4, 1, 16, 1, 1, 1, 0, 0},
		{12604, 60, 160, 1, 2, 8, 8, 1, 8, 1, 1, 1, 0, 0},
		{3728, 96, 196, 1, 2, 8, 8, 1, 64, 1, 1, 1, 0, 0},
		{29584, 32, 28, 1, 2, 8, 4, 1, 16, 1, 1, 1, 0, 0},
		{12544, 32, 27, 1, 2, 8, 8, 1, 16, 1, 1, 1, 0, 0},
	},
	wideBest: gemm.ConfigTable{
		{24, 488, 88, 1, 2, 2, 8, 1, 8, 1, 1, 1, 1, 0},
		{49, 1024, 512, 1, 2, 4, 8, 1, 8, 1, 1, 1, 1, 0},
		{49, 1024, 1024, 1, 2, 4, 8, 1, 4, 1, 1, 1, 1, 0},
	},
	wideFallback: gemm.ConfigTable{
		{24, 488, 88, 1, 2, 2, 8, 1, 8, 1, 1, 1, 1, 0},
		{49, 1024, 512, 1, 2, 4, 8, 1, 8, 1, 1, 1, 1, 0},
		{49, 1024, 1024, 1, 2, 4, 8, 1, 4, 1, 1, 1, 1, 0},
	},
	squareBest: gemm.ConfigTable{
		{24, 88, 236, 1, 2, 2, 8, 1, 4, 1, 1, 1, 1, 0},
		{24, 88, 488, 1, 2, 2, 8, 1, 4, 1, 1, 1, 1, 0},
		{72, 92, 136, 1, 2, 2, 8, 1, 32, 1, 1, 1, 1, 0},
		{268, 824, 5076, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{180, 420, 952, 1, 4, 4, 8, 1, 16, 1, 1, 1, 0, 1},
		{1000, 152, 304, 1, 4, 8, 4, 1, 32, 1, 1, 1, 0, 0},
		{272, 400, 2116, 1, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{196, 512, 512, 1, 5, 2, 8, 1, 4, 1, 1, 1, 1, 1},
	},
	squareFallback: gemm.ConfigTable{
		{24, 88, 236, 1, 2, 2, 8, 1, 4, 1, 1, 1, 1, 0},
		{24, 88, 488, 1, 2, 2, 8, 1, 4, 1, 1, 1, 1, 0},
		{72, 92, 136, 1, 2, 2, 8, 1, 32, 1, 1, 1, 1, 0},
		{268, 824, 5076, 1, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
		{180, 420, 952, 1, 5, 2, 8, 1, 8, 1, 1, 1, 1, 0},
		{1000, 152, 304, 1, 4, 8, 4, 1, 32, 1, 1, 1, 0, 0},
		{272, 400, 2116, 1, 2, 8, 4, 1, 4, 1, 1, 1, 0, 0},
		{196, 512, 512, 1, 5, 2, 8, 1, 8, 1, 1, 1, 1, 0},
	},
	batchedBest: gemm.ConfigTable{
		{3136, 64, 64, 36, 4, 8, 4, 1, 16, 1, 1, 1, 0, 1},
		{4096, 48, 32, 36, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{688, 92, 68, 32, 4, 8, 4, 1, 32, 1, 1, 1, 0, 1},
		{24, 464, 412, 24, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{112, 184, 144, 28, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{5776, 64, 32, 36, 4, 4, 8, 1, 4, 1, 1, 1, 0, 1},
		{1568, 64, 40, 36, 4, 8, 4, 1, 8, 1, 1, 1, 0, 1},
		{2920, 64, 64, 24, 4, 8, 4, 1, 8, 1, 1, 1, 0, 1},
	},
	batchedFallback: gemm.ConfigTable{
		{3136, 64, 64, 36, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
		{4096, 48, 32, 36, 4, 4, 8, 1, 64, 1, 1, 1, 0, 0},
		{688, 92, 68, 32, 4, 8, 4, 1, 32, 1, 1, 1, 0, 0},
		{24, 464, 412, 24, 2, 8, 4, 1, 32, 1, 1, 1, 0, 0},
		{112, 184, 144, 28, 4, 4, 8, 1, 8, 1, 1, 1, 0, 0},
		{5776, 64, 32, 36, 2, 8, 8, 1, 32, 1, 1, 1, 0, 0},
		{1568, 64, 40, 36, 4, 8, 4, 1, 16, 1, 1, 1, 0, 0},
		{2920, 64, 64, 24, 4, 8, 4, 1, 8, 1, 1, 1, 0, 0},
	},
}

func g710RHSOnlyF16(s gemm.Shape, c Caps) gemm.Pair {
	return g710F16.configure(s, c)
}

func g77RHSOnlyQ8(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return blocks(s, 1, 4, 16, 1, max(s.N/2, 1), 0, 1, 0, 1)
	}
	h0 := max(min(s.N/4, 256), 1)
	if s.M >= 28 {
		return blocks(s, 4, 4, 16, 1, h0, 0, 1, 0, 1)
	}
	return blocks(s, 2, 4, 16, 1, h0, 0, 1, 0, 1)
}

func g78RHSOnlyF32(s gemm.Shape, _ Caps) gemm.Pair {
	rMN, rMK, rNK, w := s.RMN(), s.RMK(), s.RNK(), s.Workload()

	if s.M == 1 {
		narrow := blocks(s, 1, 2, 8, 1, 2, 0, 1, 1, 0, 0)
		wide := blocks(s, 1, 2, 2, 1, 32, 0, 0, 0, 1, 0)
		if w > 278.7 {
			if w <= 363.7 && rMK > 0.0031 {
				return blocks(s, 1, 4, 4, 1, 32, 0, 1, 0, 1, 0)
			}
			return blocks(s, 1, 4, 2, 1, 32, 0, 1, 0, 1, 0)
		}
		if w <= 7.5 {
			return narrow
		}
		if rMN <= 0.0031 {
			if w <= 16.75 && rNK > 1.6671 {
				return narrow
			}
			return wide
		}
		if rMK <= 0.0027 {
			if rMK <= 0.0014 || w > 8.95 {
				return wide
			}
			return narrow
		}
		if w <= 14.15 || rMK > 0.0041 {
			return narrow
		}
		return wide
	}

	if w <= 1384.8 {
		if w <= 704.0 {
			return blocks(s, 2, 2, 4, 1, 32, 0, 1, 0, 1, 0)
		}
		return blocks(s, 2, 4, 8, 1, 4, 0, 0, 0, 1, 1)
	}
	if w <= 16761.6006 {
		if rMN <= 187.125 {
			return blocks(s, 4, 4, 4, 1, 16, 0, 0, 0, 1, 1)
		}
		return blocks(s, 2, 4, 8, 1, 4, 0, 0, 0, 1, 1)
	}
	if rMK <= 432.463 {
		return blocks(s, 5, 4, 4, 1, 16, 0, 0, 0, 1, 1)
	}
	return blocks(s, 2, 4, 4, 1, 16, 0, 1, 0, 1, 1)
}

var g78F16Vector = gemm.ConfigTable{
	{1, 8984, 640, 1, 1, 4, 2, 1, 0, 1, 0, 1, 1, 0},
	{1, 420, 392, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
	{1, 644, 5288, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
	{1, 6512, 6404, 1, 1, 2, 2, 1, 0, 1, 0, 1, 1, 0},
	{1, 5304, 640, 1, 1, 2, 2, 1, 0, 1, 0, 1, 0, 0},
	{1, 1352, 1520, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
	{1, 4096, 25088, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
	{1, 732, 8988, 1, 1, 2, 4, 1, 0, 1, 0, 1, 0, 0},
}

func g78RHSOnlyF16(s gemm.Shape, _ Caps) gemm.Pair {
	if s.M == 1 {
		return nearest(s, g78F16Vector)
	}
	rMN, rMK, rNK, w := s.RMN(), s.RMK(), s.RNK(), s.Workload()

	if w <= 1384.8 {
		if rNK <= 0.8333 {
			if rMK <= 0.9119 {
				return blocks(s, 2, 2, 16, 1, 4, 0, 1, 0, 1, 1)
			}
			if rNK <= 0.1181 {
				return blocks(s, 2, 2, 8, 1, 32, 0, 0, 1, 0, 0)
			}
			return blocks(s, 4, 4, 8, 1, 32, 0, 1, 1, 0, 0)
		}
		if rMK <= 1.0013 {
			return blocks(s, 4, 4, 8, 1, 32, 0, 1, 1, 0, 1)
		}
		return blocks(s, 5, 4, 8, 1, 4, 0, 1, 1, 0, 1)
	}
	if w <= 11404.7998 {
		if rMK <= 2.2884 {
			if rNK <= 0.9286 {
				return blocks(s, 4, 4, 8, 1, 4, 0, 1, 1, 0, 1)
			}
			return blocks(s, 4, 4, 8, 1, 32, 0, 1, 1, 0, 1)
		}
		return blocks(s, 5, 4, 8, 1, 4, 0, 1, 1, 0, 1)
	}
	if rNK <= 1.1926 {
		if rMN <= 1385.7917 {
			return blocks(s, 6, 4, 8, 1, 4, 0, 1, 1, 0, 1)
		}
		return blocks(s, 2, 8, 8, 1, 32, 0, 1, 1, 0, 0)
	}
	return blocks(s, 6, 4, 8, 1, 32, 0, 1, 1, 0, 1)
}
