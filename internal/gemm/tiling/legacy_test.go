package tiling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

func TestLegacyNativeV1(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		target gpu.Target
		shape  gemm.Shape
		dt     dtype.DataType
		m0, n0 int
	}{
		{"g71 f16", gpu.G71, gemm.Shape{M: 64, N: 64, K: 64, B: 1}, dtype.F16, 4, 8},
		{"g52 f16 short", gpu.G52, gemm.Shape{M: 3, N: 64, K: 64, B: 1}, dtype.F16, 3, 8},
		{"g72 f32 vector narrow", gpu.G72, gemm.Shape{M: 1, N: 1000, K: 64, B: 1}, dtype.F32, 1, 2},
		{"g72 f32 vector wide", gpu.G72, gemm.Shape{M: 1, N: 1001, K: 64, B: 1}, dtype.F32, 1, 4},
		{"g76 f32 matrix", gpu.G76, gemm.Shape{M: 2, N: 1000, K: 64, B: 1}, dtype.F32, 2, 4},
		{"midgard f32 vector", gpu.T800, gemm.Shape{M: 1, N: 10, K: 64, B: 1}, dtype.F32, 1, 4},
		{"midgard f16", gpu.Midgard, gemm.Shape{M: 16, N: 16, K: 16}, dtype.F16, 4, 8},
		{"q8", gpu.G76, gemm.Shape{M: 8, N: 8, K: 8, B: 1}, dtype.QASYMM8, 4, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Legacy(tc.target, gemm.NativeV1, tc.shape, tc.dt)
			require.NoError(t, err)
			require.Equal(t, gemm.LHSInfo{M0: tc.m0, K0: 1, V0: 1}, p.LHS)
			require.Equal(t, gemm.RHSInfo{N0: tc.n0, K0: 1, H0: 1}, p.RHS)
			require.NoError(t, gemm.ValidateKernelConfig(gemm.NativeV1, p.LHS, p.RHS))
		})
	}
}

func TestLegacyReshapedV1(t *testing.T) {
	t.Parallel()
	s := gemm.Shape{M: 64, N: 8, K: 300, B: 1}

	p, err := Legacy(gpu.G72, gemm.ReshapedV1, s, dtype.F32)
	require.NoError(t, err)
	require.Equal(t, gemm.LHSInfo{M0: 4, K0: 4, V0: 2, Transpose: true, Interleave: true}, p.LHS)
	require.Equal(t, gemm.RHSInfo{N0: 4, K0: 1, H0: 4}, p.RHS)
	require.NoError(t, gemm.ValidateKernelConfig(gemm.ReshapedV1, p.LHS, p.RHS))

	p, err = Legacy(gpu.T700, gemm.ReshapedV1, s, dtype.F16)
	require.NoError(t, err)
	require.Equal(t, gemm.LHSInfo{M0: 4, K0: 4, V0: 1, Transpose: true, Interleave: true}, p.LHS)
	require.Equal(t, gemm.RHSInfo{N0: 8, K0: 1, H0: 1}, p.RHS)
}

func TestLegacyRejects(t *testing.T) {
	t.Parallel()
	s := gemm.Shape{M: 8, N: 8, K: 8, B: 1}

	_, err := Legacy(gpu.G71, gemm.Native, s, dtype.F32)
	require.ErrorIs(t, err, gemm.ErrInvalidArgument)

	_, err = Legacy(gpu.G71, gemm.NativeV1, gemm.Shape{M: 8, N: 0, K: 8, B: 1}, dtype.F32)
	require.ErrorIs(t, err, gemm.ErrInvalidArgument)

	_, err = Legacy(gpu.G71, gemm.NativeV1, s, dtype.Unknown)
	require.ErrorIs(t, err, gemm.ErrDataTypeUnsupported)
}
