package gemm

import (
	"github.com/pkg/errors"

	"github.com/samcharles93/gemmtune/internal/dtype"
)

// TextureCaps is the part of the capability probe the texture validator
// reads. *device.Probe satisfies it.
type TextureCaps interface {
	TextureFromBufferSupported() bool
	TexturePitchAlignmentPixels() uint64
	MaxTextureWidthPixels() uint64
	MaxTextureHeightPixels() uint64
}

// texelChannels is the number of values packed into one RGBA texel.
const texelChannels = 4

// ValidateTextureExport reports whether a reshaped RHS tensor can be bound
// as a 2D texture. It returns nil when rhs does not request export.
func ValidateTextureExport(reshaped TensorShape, dt dtype.DataType, rhs RHSInfo, caps TextureCaps) error {
	if !rhs.ExportToTexture {
		return nil
	}
	// Only 2 and 3 are rejected; 1 is left to the kernel validation.
	if rhs.N0 == 2 || rhs.N0 == 3 || rhs.K0 == 2 || rhs.K0 == 3 {
		return errors.Wrapf(ErrBlockSizeUnsupported, "texture export with n0=%d k0=%d", rhs.N0, rhs.K0)
	}
	if dt != dtype.F32 && dt != dtype.F16 {
		return errors.Wrapf(ErrDataTypeUnsupported, "texture export with %s", dt)
	}
	if !caps.TextureFromBufferSupported() {
		return errors.Wrap(ErrExtensionUnsupported, "cl_khr_image2d_from_buffer")
	}
	if caps.TexturePitchAlignmentPixels() == 0 {
		return errors.Wrap(ErrDeviceLimitExceeded, "image pitch alignment unavailable")
	}

	maxWidth := caps.MaxTextureWidthPixels() * texelChannels
	maxHeight := caps.MaxTextureHeightPixels()
	if uint64(reshaped.Dim(0)) > maxWidth {
		return errors.Wrapf(ErrDeviceLimitExceeded, "reshaped width %d exceeds %d", reshaped.Dim(0), maxWidth)
	}
	if height := uint64(reshaped.Dim(1)) * uint64(reshaped.Dim(2)); height > maxHeight {
		return errors.Wrapf(ErrDeviceLimitExceeded, "reshaped height %d exceeds %d", height, maxHeight)
	}
	return nil
}

// SelectLHSRHS returns img when its RHS can be exported to a texture for an
// (n, k, b) RHS of type dt, and buf otherwise.
func SelectLHSRHS(img, buf Pair, n, k, b int, dt dtype.DataType, caps TextureCaps) Pair {
	reshaped, err := ReshapedRHSShape(TensorShape{n, k, b}, img.RHS)
	if err != nil {
		return buf
	}
	if ValidateTextureExport(reshaped, dt, img.RHS, caps) != nil {
		return buf
	}
	return img
}

// StaticCaps is a fixed TextureCaps.
type StaticCaps struct {
	FromBuffer     bool
	PitchAlignment uint64
	MaxWidth       uint64
	MaxHeight      uint64
}

func (c StaticCaps) TextureFromBufferSupported() bool { return c.FromBuffer }
func (c StaticCaps) TexturePitchAlignmentPixels() uint64 { return c.PitchAlignment }
func (c StaticCaps) MaxTextureWidthPixels() uint64 { return c.MaxWidth }
func (c StaticCaps) MaxTextureHeightPixels() uint64 { return c.MaxHeight }
