package device

import (
	"fmt"

	"github.com/samcharles93/gemmtune/internal/gpu"
)

type builtinSpec struct {
	name       string
	version    string
	units      uint64
	image      bool
	dot        bool
	dotAcc     bool
	nonUniform bool
}

var builtinSpecs = map[gpu.Target]builtinSpec{
	gpu.T600:   {name: "Mali-T628", version: "OpenCL 1.2", units: 4},
	gpu.T700:   {name: "Mali-T760", version: "OpenCL 1.2", units: 8},
	gpu.T800:   {name: "Mali-T860", version: "OpenCL 1.2", units: 4},
	gpu.G71:    {name: "Mali-G71", version: "OpenCL 2.0", units: 8, nonUniform: true},
	gpu.G72:    {name: "Mali-G72", version: "OpenCL 2.0", units: 12, image: true, nonUniform: true},
	gpu.G51:    {name: "Mali-G51", version: "OpenCL 2.0", units: 4, image: true, nonUniform: true},
	gpu.G51BIG: {name: "Mali-G51BIG", version: "OpenCL 2.0", units: 4, image: true, nonUniform: true},
	gpu.G51LIT: {name: "Mali-G51LIT", version: "OpenCL 2.0", units: 2, image: true, nonUniform: true},
	gpu.G52:    {name: "Mali-G52", version: "OpenCL 2.0", units: 6, image: true, dot: true, nonUniform: true},
	gpu.G52LIT: {name: "Mali-G52LIT", version: "OpenCL 2.0", units: 2, image: true, dot: true, nonUniform: true},
	gpu.G76:    {name: "Mali-G76", version: "OpenCL 2.1", units: 12, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G77:    {name: "Mali-G77", version: "OpenCL 2.1", units: 9, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G57:    {name: "Mali-G57", version: "OpenCL 2.1", units: 6, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G78:    {name: "Mali-G78", version: "OpenCL 2.1", units: 24, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G710:   {name: "Mali-G710", version: "OpenCL 3.0", units: 10, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G610:   {name: "Mali-G610", version: "OpenCL 3.0", units: 4, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G715:   {name: "Mali-G715", version: "OpenCL 3.0", units: 11, image: true, dot: true, dotAcc: true, nonUniform: true},
	gpu.G615:   {name: "Mali-G615", version: "OpenCL 3.0", units: 6, image: true, dot: true, dotAcc: true, nonUniform: true},
}

// BuiltinProfile returns a stock profile for a concrete target.
func BuiltinProfile(t gpu.Target) (Profile, error) {
	spec, ok := builtinSpecs[t]
	if !ok {
		return Profile{}, fmt.Errorf("no builtin profile for target %s", t)
	}
	p := Profile{
		Name:           spec.name,
		Version:        spec.version + " v1.r26p0",
		Extensions:     []string{"cl_khr_global_int32_base_atomics", ExtFP16},
		MaxImageWidth:  65536,
		MaxImageHeight: 65536,
		ComputeUnits:   spec.units,
	}
	if spec.nonUniform {
		p.Extensions = append(p.Extensions, ExtNonUniformWorkGroupSize)
	}
	if spec.image {
		p.Extensions = append(p.Extensions, ExtImage2DFromBuffer)
		p.PitchAlignment = 64
	}
	if spec.dot {
		p.Extensions = append(p.Extensions, ExtDotProduct)
	}
	if spec.dotAcc {
		p.Extensions = append(p.Extensions, ExtDotProductAccumulate)
	}
	return p, nil
}
