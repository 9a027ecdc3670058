package neon

import "github.com/samcharles93/gemmtune/internal/gemm"

const (
	defaultTileM = 32
	defaultTileN = 32
	defaultTileK = 16

	maxTileM = 64
	maxTileN = 64
	maxTileK = 64
)

// BlockConfig is the cache blocking around a Method's micro kernel. Every
// tile is a multiple of the kernel's block in that dimension.
type BlockConfig struct {
	TileM int `json:"tile_m"`
	TileN int `json:"tile_n"`
	TileK int `json:"tile_k"`
}

func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		TileM: defaultTileM,
		TileN: defaultTileN,
		TileK: defaultTileK,
	}
}

// Blocking sizes the tiles for method on shape s. Deep reductions get a
// longer K tile.
func Blocking(method Method, s gemm.Shape) BlockConfig {
	cfg := DefaultBlockConfig()

	switch {
	case s.K >= 192:
		cfg.TileK = 32
	case s.K >= 96:
		cfg.TileK = 24
	}

	cfg.TileM = clampTile(cfg.TileM, method.OutHeight, maxTileM)
	cfg.TileN = clampTile(cfg.TileN, method.OutWidth, maxTileN)
	cfg.TileK = clampTile(cfg.TileK, method.KUnroll, maxTileK)

	return cfg
}

// clampTile rounds v up to a multiple of step, then down to the largest
// multiple not above max. A step larger than max wins.
func clampTile(v, step, max int) int {
	if step < 1 {
		step = 1
	}
	if v < step {
		v = step
	}
	v = (v + step - 1) / step * step
	if v > max {
		v = max - max%step
	}
	if v < step {
		return step
	}
	return v
}
