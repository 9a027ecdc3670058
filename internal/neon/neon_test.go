package neon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
)

var (
	plain = device.CPUFeatures{ASIMD: true}
	full  = device.CPUFeatures{ASIMD: true, FP16: true, DotProd: true}
)

func TestSelect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		features device.CPUFeatures
		query    gemm.Query
		want     Method
	}{
		{"vector constant rhs", plain, gemm.Query{M: 1, N: 512, K: 512, DataType: dtype.F32, RHSConstant: true}, SGEMVPretransposed},
		{"vector", plain, gemm.Query{M: 1, N: 512, K: 512, DataType: dtype.F32}, SGEMVTrans},
		{"narrow", plain, gemm.Query{M: 64, N: 8, K: 512, DataType: dtype.F32}, SGEMMNative16x4},
		{"shallow", plain, gemm.Query{M: 64, N: 64, K: 2, DataType: dtype.F32}, SGEMMNative16x4},
		{"f32", plain, gemm.Query{M: 64, N: 64, K: 64, DataType: dtype.F32}, SGEMM12x8},
		{"f16", full, gemm.Query{M: 64, N: 64, K: 64, DataType: dtype.F16}, HGEMM24x8},
		{"s8 dot", full, gemm.Query{M: 64, N: 64, K: 64, DataType: dtype.QASYMM8Signed}, GEMMS8Dot12x8},
		{"u8 dot", full, gemm.Query{M: 64, N: 64, K: 64, DataType: dtype.QASYMM8}, GEMMU8Dot12x8},
		{"s8", plain, gemm.Query{M: 64, N: 64, K: 64, DataType: dtype.QSYMM8PerChannel}, GEMMS84x4},
		{"u8", plain, gemm.Query{M: 64, N: 64, K: 64, DataType: dtype.QASYMM8}, GEMMU84x4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Select(tc.features, tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSelectErrors(t *testing.T) {
	t.Parallel()
	q := gemm.Query{M: 8, N: 8, K: 8, DataType: dtype.F32}

	_, err := Select(device.CPUFeatures{}, q)
	require.ErrorIs(t, err, gemm.ErrExtensionUnsupported)

	q.DataType = dtype.F16
	_, err = Select(plain, q)
	require.ErrorIs(t, err, gemm.ErrDataTypeUnsupported)

	q.DataType = dtype.BFloat16
	_, err = Select(full, q)
	require.ErrorIs(t, err, gemm.ErrDataTypeUnsupported)

	_, err = Select(full, gemm.Query{M: 8, N: 0, K: 8, DataType: dtype.F32})
	require.ErrorIs(t, err, gemm.ErrInvalidArgument)
}

func TestBlocking(t *testing.T) {
	t.Parallel()

	cfg := Blocking(SGEMM12x8, gemm.Shape{M: 256, N: 256, K: 64, B: 1})
	require.Equal(t, BlockConfig{TileM: 32, TileN: 36, TileK: 16}, cfg)

	cfg = Blocking(SGEMM12x8, gemm.Shape{M: 256, N: 256, K: 128, B: 1})
	require.Equal(t, 24, cfg.TileK)

	cfg = Blocking(HGEMM24x8, gemm.Shape{M: 256, N: 256, K: 256, B: 1})
	require.Equal(t, BlockConfig{TileM: 32, TileN: 48, TileK: 32}, cfg)

	cfg = Blocking(SGEMVTrans, gemm.Shape{M: 1, N: 4096, K: 4096, B: 1})
	require.Equal(t, BlockConfig{TileM: 32, TileN: 96, TileK: 32}, cfg)

	cfg = Blocking(GEMMU84x4, gemm.Shape{M: 64, N: 64, K: 100, B: 1})
	require.Equal(t, BlockConfig{TileM: 32, TileN: 32, TileK: 32}, cfg)
}

func TestClampTile(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, clampTile(0, 1, 64))
	require.Equal(t, 64, clampTile(100, 1, 64))
	require.Equal(t, 60, clampTile(62, 12, 64))
	require.Equal(t, 96, clampTile(32, 96, 64))
	require.Equal(t, 8, clampTile(5, 8, 64))
}
