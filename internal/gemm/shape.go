package gemm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Shape is a GEMM problem: M rows of output, N columns, K reduction depth
// and B batches.
type Shape struct {
	M int `json:"m" yaml:"m"`
	N int `json:"n" yaml:"n"`
	K int `json:"k" yaml:"k"`
	B int `json:"b" yaml:"b"`
}

// Normalize returns s with a zero batch replaced by 1.
func (s Shape) Normalize() Shape {
	if s.B == 0 {
		s.B = 1
	}
	return s
}

// Validate rejects non-positive dimensions.
func (s Shape) Validate() error {
	if s.M <= 0 || s.N <= 0 || s.K <= 0 || s.B <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "shape %s", s)
	}
	return nil
}

func (s Shape) String() string {
	return fmt.Sprintf("m=%d n=%d k=%d b=%d", s.M, s.N, s.K, s.B)
}

// RMN, RMK and RNK are the float32 shape ratios the calibration trees use.
func (s Shape) RMN() float32 { return float32(s.M) / float32(s.N) }
func (s Shape) RMK() float32 { return float32(s.M) / float32(s.K) }
func (s Shape) RNK() float32 { return float32(s.N) / float32(s.K) }

// Workload is m*n*b/20 in float32.
func (s Shape) Workload() float32 {
	return float32(s.M) * float32(s.N) * float32(s.B) / 20.0
}

// TensorShape lists tensor dimensions, innermost first. Dimensions past
// the rank read as 1.
type TensorShape []int

// Dim returns dimension i, or 1 beyond the rank.
func (t TensorShape) Dim(i int) int {
	if i < 0 || i >= len(t) {
		return 1
	}
	return t[i]
}

// Elements is the product of all dimensions.
func (t TensorShape) Elements() int {
	n := 1
	for _, d := range t {
		n *= d
	}
	return n
}

func (t TensorShape) String() string {
	parts := make([]string, len(t))
	for i, d := range t {
		parts[i] = fmt.Sprint(d)
	}
	return "[" + strings.Join(parts, "x") + "]"
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ReshapedLHSShape returns the shape produced by the LHS reshape kernel.
// With reinterpretAs3D, dimensions 1 and 2 are folded into the height.
func ReshapedLHSShape(shape TensorShape, lhs LHSInfo, reinterpretAs3D bool) (TensorShape, error) {
	if lhs.M0 <= 0 || lhs.K0 <= 0 || lhs.V0 <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "lhs block sizes %s", lhs)
	}
	if len(shape) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty lhs shape")
	}

	width := shape.Dim(0)
	height := shape.Dim(1)
	if reinterpretAs3D {
		height *= shape.Dim(2)
	}
	hBlocks := ceilDiv(width, lhs.K0)
	vBlocks := ceilDiv(height, lhs.M0)

	out := append(TensorShape(nil), shape...)
	for len(out) < 2 {
		out = append(out, 1)
	}
	out[0] = lhs.M0 * lhs.K0 * hBlocks * lhs.V0
	out[1] = ceilDiv(vBlocks, lhs.V0)
	if reinterpretAs3D && len(out) > 2 {
		out = append(out[:2], out[3:]...)
	}
	return out, nil
}

// ReshapedRHSShape returns the shape produced by the RHS reshape kernel.
func ReshapedRHSShape(shape TensorShape, rhs RHSInfo) (TensorShape, error) {
	if rhs.N0 <= 0 || rhs.K0 <= 0 || rhs.H0 <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "rhs block sizes %s", rhs)
	}
	if len(shape) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty rhs shape")
	}

	hBlocks := ceilDiv(shape.Dim(0), rhs.N0)
	vBlocks := ceilDiv(shape.Dim(1), rhs.K0)

	out := append(TensorShape(nil), shape...)
	for len(out) < 2 {
		out = append(out, 1)
	}
	out[0] = rhs.N0 * rhs.K0 * vBlocks * rhs.H0
	out[1] = ceilDiv(hBlocks, rhs.H0)
	return out, nil
}
