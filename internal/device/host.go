package device

import "golang.org/x/sys/cpu"

// CPUFeatures is the subset of AArch64 features the NEON selector uses.
type CPUFeatures struct {
	ASIMD   bool `json:"asimd"`
	FP16    bool `json:"fp16"`
	DotProd bool `json:"dotprod"`
	SVE     bool `json:"sve"`
}

// HostFeatures reports the running CPU's features. Non-arm64 hosts report
// everything false.
func HostFeatures() CPUFeatures {
	return CPUFeatures{
		ASIMD:   cpu.ARM64.HasASIMD,
		FP16:    cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP,
		DotProd: cpu.ARM64.HasASIMDDP,
		SVE:     cpu.ARM64.HasSVE,
	}
}
