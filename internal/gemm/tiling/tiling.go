// Package tiling picks the block parameters of a tiled GEMM. A Selector is
// bound to one target and one tiling family; within it a table maps each
// data-type class to a calibration function over the problem shape.
//
// The architecture axis is lenient: targets without their own table use the
// family default. The type axis is strict: a class missing from the table
// is reported as gemm.ErrDataTypeUnsupported.
package tiling

import (
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"

	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

// Caps is what the calibration functions read from the device.
// *device.Probe satisfies it.
type Caps interface {
	gemm.TextureCaps
	DotProductSupported() bool
}

// noCaps reports no optional capability.
type noCaps struct{}

func (noCaps) TextureFromBufferSupported() bool { return false }
func (noCaps) TexturePitchAlignmentPixels() uint64 { return 0 }
func (noCaps) MaxTextureWidthPixels() uint64 { return 0 }
func (noCaps) MaxTextureHeightPixels() uint64 { return 0 }
func (noCaps) DotProductSupported() bool { return false }

type configFunc func(s gemm.Shape, c Caps) gemm.Pair

type table map[dtype.Class]configFunc

// Selector returns tiling parameters for one (target, family) pair.
type Selector struct {
	target gpu.Target
	kind   gemm.ConfigKind
	caps   Caps
	table  table
}

// New binds a selector. A nil caps behaves like a device with no texture
// or dot-product support.
func New(target gpu.Target, kind gemm.ConfigKind, caps Caps) *Selector {
	if caps == nil {
		caps = noCaps{}
	}
	return &Selector{
		target: target,
		kind:   kind,
		caps:   caps,
		table:  tableFor(target, kind),
	}
}

func tableFor(t gpu.Target, kind gemm.ConfigKind) table {
	switch kind {
	case gemm.ConfigNative:
		return nativeTable(t)
	case gemm.ConfigReshaped:
		return reshapedTable(t)
	case gemm.ConfigReshapedOnlyRHS:
		return rhsOnlyTable(t)
	default:
		return nil
	}
}

func (s *Selector) Target() gpu.Target {
	return s.target
}

func (s *Selector) Kind() gemm.ConfigKind {
	return s.kind
}

// Configure returns the LHS/RHS descriptors for shape with elements of type
// dt. A zero batch is treated as 1.
func (s *Selector) Configure(shape gemm.Shape, dt dtype.DataType) (gemm.Pair, error) {
	if s.table == nil {
		return gemm.Pair{}, errors.Wrapf(gemm.ErrInvalidArgument, "unknown tiling family %s", s.kind)
	}
	shape = shape.Normalize()
	if err := shape.Validate(); err != nil {
		return gemm.Pair{}, err
	}
	fn, ok := s.table[dt.Class()]
	if !ok {
		return gemm.Pair{}, errors.Wrapf(gemm.ErrDataTypeUnsupported, "%s tiling for %s on %s", s.kind, dt, s.target)
	}
	return fn(shape, s.caps), nil
}

// blocks builds a pair from block sizes and up to five 0/1 flags, in order:
// lhs interleave, rhs interleave, lhs transpose, rhs transpose, texture
// export. Missing flags are 0.
func blocks(s gemm.Shape, m0, n0, k0, v0, h0 int, flags ...int) gemm.Pair {
	var f [5]bool
	for i, v := range flags {
		f[i] = v != 0
	}
	return gemm.MustConfigure(s.M, s.N, m0, n0, k0, v0, h0, f[0], f[1], f[2], f[3], f[4])
}

// choose returns img when its RHS can live in a texture, buf otherwise.
func choose(s gemm.Shape, img, buf gemm.Pair, dt dtype.DataType, c Caps) gemm.Pair {
	return gemm.SelectLHSRHS(img, buf, s.N, s.K, s.B, dt, c)
}

// nearest looks s up in a calibration table.
func nearest(s gemm.Shape, t gemm.ConfigTable) gemm.Pair {
	return must.M1(gemm.FindLHSRHS(t, s))
}
