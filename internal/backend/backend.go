// Package backend names the places a GEMM can run and resolves a user's
// backend choice against the device and host that are actually present.
package backend

import (
	"fmt"
	"strings"

	"github.com/samcharles93/gemmtune/internal/device"
)

const (
	GPU  = "gpu"
	CPU  = "cpu"
	All  = "all"
	Auto = "auto"
)

func Normalize(name string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(name))
	if backend == "" {
		return Auto, nil
	}
	switch backend {
	case GPU, CPU, All, Auto:
		return backend, nil
	case "mali", "opencl":
		return GPU, nil
	case "neon":
		return CPU, nil
	default:
		return "", fmt.Errorf("unknown backend %q (expected auto, gpu, cpu, or all)", backend)
	}
}

// Plan says which selectors a command runs.
type Plan struct {
	GPU bool
	CPU bool
}

// Resolve turns a backend name into a Plan. haveDevice reports whether a
// GPU target or profile was configured. Auto prefers the GPU and falls
// back to the host CPU when it has NEON.
func Resolve(name string, haveDevice bool, f device.CPUFeatures) (Plan, error) {
	backend, err := Normalize(name)
	if err != nil {
		return Plan{}, err
	}
	switch backend {
	case GPU:
		return Plan{GPU: true}, nil
	case CPU:
		return Plan{CPU: true}, nil
	case All:
		return Plan{GPU: true, CPU: true}, nil
	}
	switch {
	case haveDevice:
		return Plan{GPU: true}, nil
	case Has(CPU, f):
		return Plan{CPU: true}, nil
	default:
		return Plan{}, fmt.Errorf("no backend available: configure a GPU target or profile, or run on a NEON host")
	}
}
