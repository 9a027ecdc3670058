package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"golang.org/x/sys/cpu"

	"github.com/samcharles93/gemmtune/internal/backend"
	"github.com/samcharles93/gemmtune/internal/device"
)

type output struct {
	GoVersion string             `json:"go_version"`
	GoOS      string             `json:"go_os"`
	GoArch    string             `json:"go_arch"`
	CPUs      int                `json:"cpus"`
	Backends  string             `json:"backends"`
	NEON      device.CPUFeatures `json:"neon"`
	Features  map[string]bool    `json:"features"`
}

func main() {
	features := map[string]bool{
		"FP":       cpu.ARM64.HasFP,
		"ASIMD":    cpu.ARM64.HasASIMD,
		"FPHP":     cpu.ARM64.HasFPHP,
		"ASIMDHP":  cpu.ARM64.HasASIMDHP,
		"ASIMDDP":  cpu.ARM64.HasASIMDDP,
		"ASIMDRDM": cpu.ARM64.HasASIMDRDM,
		"ASIMDFHM": cpu.ARM64.HasASIMDFHM,
		"SVE":      cpu.ARM64.HasSVE,
		"SVE2":     cpu.ARM64.HasSVE2,
	}

	host := device.HostFeatures()
	out := output{
		GoVersion: runtime.Version(),
		GoOS:      runtime.GOOS,
		GoArch:    runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		Backends:  backend.Available(host),
		NEON:      host,
		Features:  features,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
