package backend

import (
	"testing"

	"github.com/samcharles93/gemmtune/internal/device"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":       Auto,
		" GPU ":  GPU,
		"mali":   GPU,
		"opencl": GPU,
		"neon":   CPU,
		"all":    All,
	}
	for in, want := range tests {
		got, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := Normalize("cuda"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	neon := device.CPUFeatures{ASIMD: true}
	tests := []struct {
		name       string
		backend    string
		haveDevice bool
		features   device.CPUFeatures
		want       Plan
		wantErr    bool
	}{
		{"auto with device", "auto", true, neon, Plan{GPU: true}, false},
		{"auto on neon host", "", false, neon, Plan{CPU: true}, false},
		{"auto with nothing", "auto", false, device.CPUFeatures{}, Plan{}, true},
		{"explicit gpu", "gpu", false, device.CPUFeatures{}, Plan{GPU: true}, false},
		{"explicit cpu", "neon", true, device.CPUFeatures{}, Plan{CPU: true}, false},
		{"all", "all", true, neon, Plan{GPU: true, CPU: true}, false},
		{"unknown", "tpu", true, neon, Plan{}, true},
	}
	for _, tc := range tests {
		got, err := Resolve(tc.backend, tc.haveDevice, tc.features)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v want %+v", tc.name, got, tc.want)
		}
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()
	if got := Available(device.CPUFeatures{}); got != "gpu" {
		t.Fatalf("Available without neon = %q", got)
	}
	if got := Available(device.CPUFeatures{ASIMD: true}); got != "gpu,cpu" {
		t.Fatalf("Available with neon = %q", got)
	}
	if Has("all", device.CPUFeatures{ASIMD: true}) {
		t.Fatalf("Has should only answer for concrete backends")
	}
}
