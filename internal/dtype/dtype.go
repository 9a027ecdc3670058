package dtype

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DataType is the elemental type of a GEMM operand.
type DataType int

const (
	Unknown DataType = iota
	F32
	F16
	BFloat16
	QASYMM8
	QASYMM8Signed
	QSYMM8
	QSYMM8PerChannel
	S32
	U8
)

// Class groups data types that share tiling heuristics.
type Class int

const (
	ClassUnsupported Class = iota
	ClassF32
	ClassF16
	ClassQ8
)

var names = map[DataType]string{
	Unknown:          "unknown",
	F32:              "f32",
	F16:              "f16",
	BFloat16:         "bf16",
	QASYMM8:          "qasymm8",
	QASYMM8Signed:    "qasymm8_signed",
	QSYMM8:           "qsymm8",
	QSYMM8PerChannel: "qsymm8_per_channel",
	S32:              "s32",
	U8:               "u8",
}

var aliases = map[string]DataType{
	"float32":  F32,
	"fp32":     F32,
	"float16":  F16,
	"fp16":     F16,
	"half":     F16,
	"bfloat16": BFloat16,
	"q8":       QASYMM8,
	"int32":    S32,
	"uint8":    U8,
}

func (d DataType) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return fmt.Sprintf("dtype(%d)", int(d))
}

// Class returns the heuristic class of d. All four 8-bit quantized types
// map to ClassQ8.
func (d DataType) Class() Class {
	switch d {
	case F32:
		return ClassF32
	case F16:
		return ClassF16
	case QASYMM8, QASYMM8Signed, QSYMM8, QSYMM8PerChannel:
		return ClassQ8
	default:
		return ClassUnsupported
	}
}

// Size returns the element size in bytes, 0 for Unknown.
func (d DataType) Size() int {
	switch d {
	case F32, S32:
		return 4
	case F16, BFloat16:
		return 2
	case QASYMM8, QASYMM8Signed, QSYMM8, QSYMM8PerChannel, U8:
		return 1
	default:
		return 0
	}
}

// IsFloat reports whether d is F32 or F16.
func (d DataType) IsFloat() bool {
	return d == F32 || d == F16
}

// IsSigned reports whether d is a signed 8-bit quantized type.
func (d DataType) IsSigned() bool {
	return d == QASYMM8Signed || d == QSYMM8 || d == QSYMM8PerChannel
}

func (c Class) String() string {
	switch c {
	case ClassF32:
		return "f32"
	case ClassF16:
		return "f16"
	case ClassQ8:
		return "q8"
	default:
		return "unsupported"
	}
}

// Parse resolves a data type name.
func Parse(name string) (DataType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := aliases[key]; ok {
		return d, nil
	}
	for d, n := range names {
		if n == key && d != Unknown {
			return d, nil
		}
	}
	return Unknown, errors.Errorf("unknown data type %q", name)
}

// MarshalText encodes d by name.
func (d DataType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts any name Parse accepts.
func (d *DataType) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
