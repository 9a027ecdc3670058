package gemm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// KernelType is a GEMM execution strategy.
type KernelType int

const (
	Native KernelType = iota
	NativeV1
	Reshaped
	ReshapedV1
	ReshapedOnlyRHS
)

var kernelNames = []string{
	Native:          "native",
	NativeV1:        "native_v1",
	Reshaped:        "reshaped",
	ReshapedV1:      "reshaped_v1",
	ReshapedOnlyRHS: "reshaped_only_rhs",
}

func (k KernelType) String() string {
	if k >= 0 && int(k) < len(kernelNames) {
		return kernelNames[k]
	}
	return fmt.Sprintf("kernel(%d)", int(k))
}

// ParseKernelType accepts the String() form.
func ParseKernelType(s string) (KernelType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range kernelNames {
		if name == key {
			return KernelType(i), nil
		}
	}
	return 0, errors.Errorf("unknown kernel type %q", s)
}

// MarshalText lets KernelType appear as a string in JSON and YAML.
func (k KernelType) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *KernelType) UnmarshalText(b []byte) error {
	v, err := ParseKernelType(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ConfigKind is the tiling family a strategy draws its parameters from.
type ConfigKind int

const (
	ConfigNative ConfigKind = iota
	ConfigReshaped
	ConfigReshapedOnlyRHS
)

func (c ConfigKind) String() string {
	switch c {
	case ConfigNative:
		return "native"
	case ConfigReshaped:
		return "reshaped"
	case ConfigReshapedOnlyRHS:
		return "reshaped_only_rhs"
	default:
		return fmt.Sprintf("config(%d)", int(c))
	}
}

// ConfigKinds lists every tiling family.
func ConfigKinds() []ConfigKind {
	return []ConfigKind{ConfigNative, ConfigReshaped, ConfigReshapedOnlyRHS}
}

// Config maps a strategy to its tiling family.
func (k KernelType) Config() ConfigKind {
	switch k {
	case Reshaped, ReshapedV1:
		return ConfigReshaped
	case ReshapedOnlyRHS:
		return ConfigReshapedOnlyRHS
	default:
		return ConfigNative
	}
}

// Legacy reports whether the strategy is one of the fixed-block V1
// kernels, which take no calibrated tiling.
func (k KernelType) Legacy() bool {
	return k == NativeV1 || k == ReshapedV1
}

// ReshapesRHS reports whether the strategy runs an RHS reshape pass.
func (k KernelType) ReshapesRHS() bool {
	return k.Config() != ConfigNative
}
