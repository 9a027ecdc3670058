package strategy

import (
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

var midgardTable = table{
	dtype.ClassF32: midgardFloat,
	dtype.ClassF16: midgardFloat,
	dtype.ClassQ8:  midgardQ8,
}

func midgardFloat(gemm.Shape, bool) gemm.KernelType {
	return gemm.NativeV1
}

func midgardQ8(gemm.Shape, bool) gemm.KernelType {
	return gemm.Native
}
