package gemm

import (
	"fmt"

	"github.com/samcharles93/gemmtune/internal/dtype"
)

// Query is one configuration request: a problem shape, its data type and
// whether the RHS stays constant across invocations.
type Query struct {
	M           int            `json:"m" yaml:"m"`
	N           int            `json:"n" yaml:"n"`
	K           int            `json:"k" yaml:"k"`
	B           int            `json:"b" yaml:"b"`
	DataType    dtype.DataType `json:"data_type" yaml:"data_type"`
	RHSConstant bool           `json:"rhs_constant" yaml:"rhs_constant"`
}

// Shape returns the normalised problem shape of q.
func (q Query) Shape() Shape {
	return Shape{M: q.M, N: q.N, K: q.K, B: q.B}.Normalize()
}

func (q Query) String() string {
	return fmt.Sprintf("%s %s rhs_constant=%t", q.Shape(), q.DataType, q.RHSConstant)
}
