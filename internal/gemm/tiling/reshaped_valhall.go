package tiling

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

var (
	g77Reshaped = table{
		dtype.ClassF32: g77ReshapedF32,
		dtype.ClassF16: g77ReshapedF16,
		dtype.ClassQ8:  g77ReshapedQ8,
	}
	g78Reshaped = table{
		dtype.ClassF32: g78ReshapedF32,
		dtype.ClassF16: g78ReshapedF16,
		dtype.ClassQ8:  g77ReshapedQ8,
	}
)

func g77ReshapedF32(s gemm.Shape, _ Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 8, 16, 16, 1, 0, 0, 1)
	}
	return blocks(s, 5, 4, 4, 2, 16, 0, 1, 0, 1)
}

func g77ReshapedF16(s gemm.Shape, c Caps) gemm.Pair {
	rMN, rMK, rNK, w := s.RMN(), s.RMK(), s.RNK(), s.Workload()

	buf := blocks(s, 4, 4, 4, 4, 4, 0, 0, 1, 0, 0)
	img := func(v0, h0, lhsInterleave, rhsInterleave int) gemm.Pair {
		return choose(s, blocks(s, 4, 4, 4, v0, h0, lhsInterleave, rhsInterleave, 1, 0, 1), buf, dtype.F16, c)
	}

	if rMK <= 0.11824845522642136 {
		if w <= 880.0 {
			return blocks(s, 2, 4, 4, 1, 4, 0, 0, 1, 0, 0)
		}
		if rNK <= 0.42521367967128754 {
			if w <= 1726.4000244140625 {
				return blocks(s, 4, 4, 4, 2, 2, 0, 0, 1, 0, 0)
			}
			return img(2, 1, 0, 1)
		}
		if w <= 1241.6000366210938 {
			return blocks(s, 2, 4, 4, 1, 4, 0, 0, 1, 0, 0)
		}
		return buf
	}

	if w <= 11404.7998046875 {
		if rMK <= 1.0126488208770752 {
			if rMN <= 2.545312523841858 {
				return img(2, 1, 0, 1)
			}
			return blocks(s, 2, 4, 4, 1, 4, 0, 0, 1, 0, 0)
		}
		if w <= 2881.199951171875 {
			return img(4, 2, 0, 0)
		}
		return img(2, 1, 0, 1)
	}

	if rNK <= 0.5765306055545807 && rMN <= 6.010416746139526 {
		return img(2, 1, 0, 1)
	}
	return img(2, 1, 1, 0)
}

func g77ReshapedQ8(s gemm.Shape, _ Caps) gemm.Pair {
	if s.N <= 4 {
		return blocks(s, 4, 2, 16, 4, 1, 0, 0, 0, 1)
	}
	return blocks(s, 4, 4, 16, 2, 2, 0, 1, 0, 1)
}

// The G78 trees request texture export on most leaves without checking the
// device; the caller re-validates.
func g78ReshapedF32(s gemm.Shape, _ Caps) gemm.Pair {
	rMN, rMK, rNK, w := s.RMN(), s.RMK(), s.RNK(), s.Workload()

	narrow := func() gemm.Pair { return blocks(s, 2, 4, 8, 4, 4, 0, 0, 1, 0, 1) }
	q22 := func() gemm.Pair { return blocks(s, 4, 4, 4, 2, 2, 0, 0, 1, 0, 1) }
	q44 := func() gemm.Pair { return blocks(s, 4, 4, 4, 4, 4, 0, 0, 1, 0, 1) }
	q44t := func() gemm.Pair { return blocks(s, 4, 4, 4, 4, 4, 0, 0, 0, 1, 1) }

	if w <= 1288.0 {
		if w <= 505.6 {
			if rMN <= 0.4466 && rNK <= 0.2384 {
				return narrow()
			}
			return blocks(s, 2, 2, 4, 2, 2, 0, 0, 1, 0, 0)
		}
		if rMN <= 0.2250 {
			if rMN <= 0.1599 {
				return narrow()
			}
			return q22()
		}
		if rMK <= 0.7609 {
			if rMN <= 2.5453 {
				if w <= 1089.6 {
					return narrow()
				}
				return blocks(s, 2, 4, 8, 2, 4, 0, 0, 1, 0, 1)
			}
			return blocks(s, 2, 4, 16, 4, 4, 0, 0, 1, 0, 1)
		}
		return narrow()
	}

	if w <= 5434.4001 {
		if w <= 1603.2 {
			return q22()
		}
		if rNK <= 0.6192 {
			if rMN > 16.1016 && w > 2750.0 && rMK <= 6.3151 {
				return q44t()
			}
			return q22()
		}
		if rMK <= 0.2734 {
			return q44()
		}
		return q22()
	}

	if rMK <= 25.75 {
		if rMK <= 0.3615 {
			if rMN <= 0.0913 {
				if rMK <= 0.0683 {
					return blocks(s, 8, 4, 4, 4, 2, 0, 0, 1, 0, 1)
				}
				return narrow()
			}
			return blocks(s, 8, 4, 4, 2, 2, 0, 0, 1, 0, 1)
		}
		if w <= 11174.3999 {
			if rMK <= 0.8047 {
				return blocks(s, 8, 4, 4, 2, 2, 0, 0, 1, 0, 1)
			}
			if w <= 7185.5999 {
				return q44()
			}
			return blocks(s, 8, 4, 4, 4, 2, 0, 0, 1, 0, 1)
		}
		if w <= 17917.5 {
			if rMK <= 1.5078 {
				return q22()
			}
			return q44()
		}
		if w <= 34449.6016 {
			return q22()
		}
		return blocks(s, 8, 4, 4, 2, 4, 0, 0, 1, 0, 1)
	}

	if rMK <= 331.1111 {
		if w <= 53397.5996 {
			if rMN <= 57.8063 {
				return q22()
			}
			return q44t()
		}
		if rNK <= 0.9211 {
			return blocks(s, 8, 4, 4, 4, 2, 0, 0, 1, 0, 1)
		}
		return q44t()
	}
	if w <= 38070.4004 {
		return q44t()
	}
	return q22()
}

func g78ReshapedF16(s gemm.Shape, _ Caps) gemm.Pair {
	rMN, rNK, w := s.RMN(), s.RNK(), s.Workload()

	leaf := func(v0, h0 int) gemm.Pair { return blocks(s, 8, 4, 4, v0, h0, 0, 0, 1, 0, 1) }

	if w <= 801.6 {
		return leaf(1, 1)
	}
	if rMN <= 0.1211 {
		if w <= 3296.0 || rNK <= 1.0625 {
			return leaf(2, 2)
		}
		return leaf(2, 4)
	}
	if w <= 5068.8 {
		return leaf(1, 1)
	}
	if rNK <= 0.2361 {
		if w <= 12630.0 {
			return leaf(1, 1)
		}
		return leaf(2, 1)
	}
	if w <= 178790.3984 {
		return leaf(2, 2)
	}
	return leaf(1, 1)
}
