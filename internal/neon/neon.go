// Package neon picks the AArch64 CPU GEMM method for a problem when the
// work stays on the host instead of the GPU.
package neon

import (
	"github.com/pkg/errors"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

// Method is one CPU GEMM kernel. OutWidth and OutHeight are the output
// block the kernel writes per iteration, KUnroll the reduction step.
type Method struct {
	Name      string `json:"name"`
	OutWidth  int    `json:"out_width"`
	OutHeight int    `json:"out_height"`
	KUnroll   int    `json:"k_unroll"`
}

var (
	SGEMVPretransposed = Method{Name: "a64_sgemv_pretransposed", OutWidth: 32, OutHeight: 1, KUnroll: 1}
	SGEMVTrans         = Method{Name: "a64_sgemv_trans", OutWidth: 96, OutHeight: 1, KUnroll: 1}
	SGEMMNative16x4    = Method{Name: "a64_sgemm_native_16x4", OutWidth: 16, OutHeight: 4, KUnroll: 1}
	SGEMM12x8          = Method{Name: "a64_sgemm_12x8", OutWidth: 12, OutHeight: 8, KUnroll: 1}
	HGEMM24x8          = Method{Name: "a64_hgemm_24x8", OutWidth: 24, OutHeight: 8, KUnroll: 1}
	GEMMS8Dot12x8      = Method{Name: "a64_gemm_s8_12x8", OutWidth: 12, OutHeight: 8, KUnroll: 4}
	GEMMU8Dot12x8      = Method{Name: "a64_gemm_u8_12x8", OutWidth: 12, OutHeight: 8, KUnroll: 4}
	GEMMS84x4          = Method{Name: "a64_gemm_s8_4x4", OutWidth: 4, OutHeight: 4, KUnroll: 16}
	GEMMU84x4          = Method{Name: "a64_gemm_u8_4x4", OutWidth: 4, OutHeight: 4, KUnroll: 16}
)

func (m Method) String() string {
	return m.Name
}

// Select returns the method for q on a CPU with features f.
func Select(f device.CPUFeatures, q gemm.Query) (Method, error) {
	if !f.ASIMD {
		return Method{}, errors.Wrap(gemm.ErrExtensionUnsupported, "neon: asimd not available")
	}
	s := q.Shape()
	if err := s.Validate(); err != nil {
		return Method{}, err
	}

	switch q.DataType.Class() {
	case dtype.ClassF32:
		switch {
		case s.M == 1 && q.RHSConstant:
			return SGEMVPretransposed, nil
		case s.M == 1:
			return SGEMVTrans, nil
		case s.N < 16 || s.K < 4:
			return SGEMMNative16x4, nil
		default:
			return SGEMM12x8, nil
		}
	case dtype.ClassF16:
		if !f.FP16 {
			return Method{}, errors.Wrap(gemm.ErrDataTypeUnsupported, "neon: f16 needs fp16 arithmetic")
		}
		return HGEMM24x8, nil
	case dtype.ClassQ8:
		signed := q.DataType.IsSigned()
		switch {
		case f.DotProd && signed:
			return GEMMS8Dot12x8, nil
		case f.DotProd:
			return GEMMU8Dot12x8, nil
		case signed:
			return GEMMS84x4, nil
		default:
			return GEMMU84x4, nil
		}
	}
	return Method{}, errors.Wrapf(gemm.ErrDataTypeUnsupported, "neon: %s", q.DataType)
}
