// Package strategy chooses the GEMM execution strategy for a GPU target.
// Each architecture has a table from data-type class to a decision tree
// over the problem shape; a class missing from the table is an error.
package strategy

import (
	"github.com/pkg/errors"

	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

// Query is the input to Select.
type Query = gemm.Query

type decideFunc func(s gemm.Shape, rhsConstant bool) gemm.KernelType

type table map[dtype.Class]decideFunc

// Selector picks strategies for one target. It holds no mutable state.
type Selector struct {
	target gpu.Target
	table  table
}

// New binds a selector to target. Unknown architectures use the Midgard
// table.
func New(target gpu.Target) *Selector {
	return &Selector{target: target, table: tableFor(target)}
}

func tableFor(t gpu.Target) table {
	switch t.Arch() {
	case gpu.Bifrost:
		switch t {
		case gpu.G71:
			return g71Table
		case gpu.G52:
			return g52Table
		case gpu.G76:
			return g76Table
		default:
			return bifrostTable
		}
	case gpu.Valhall:
		if t == gpu.G77 {
			return g77Table
		}
		return valhallTable
	default:
		return midgardTable
	}
}

func (s *Selector) Target() gpu.Target {
	return s.target
}

// Select returns the execution strategy for q.
func (s *Selector) Select(q Query) (gemm.KernelType, error) {
	fn, ok := s.table[q.DataType.Class()]
	if !ok {
		return 0, errors.Wrapf(gemm.ErrDataTypeUnsupported, "strategy for %s on %s", q.DataType, s.target)
	}
	return fn(q.Shape(), q.RHSConstant), nil
}
