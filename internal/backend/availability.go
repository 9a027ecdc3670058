package backend

import (
	"strings"

	"github.com/samcharles93/gemmtune/internal/device"
)

// Has reports whether backend name can answer on this host. The GPU
// selector works from profiles and so is always available.
func Has(name string, f device.CPUFeatures) bool {
	switch name {
	case GPU:
		return true
	case CPU:
		return f.ASIMD
	default:
		return false
	}
}

// Available returns a comma-separated list of available backends.
func Available(f device.CPUFeatures) string {
	entries := []string{GPU}
	if Has(CPU, f) {
		entries = append(entries, CPU)
	}
	return strings.Join(entries, ",")
}
