package device

import (
	"strings"

	"github.com/samcharles93/gemmtune/internal/gpu"
	"github.com/samcharles93/gemmtune/internal/logger"
)

// Extension names checked by the probe.
const (
	ExtFP16                    = "cl_khr_fp16"
	ExtDotProduct              = "cl_arm_integer_dot_product_int8"
	ExtDotProductAccumulate    = "cl_arm_integer_dot_product_accumulate_int8"
	ExtNonUniformWorkGroupSize = "cl_arm_non_uniform_work_group_size"
	ExtImage2DFromBuffer       = "cl_khr_image2d_from_buffer"
	ExtMatrixMultiply          = "cl_arm_matrix_multiply"
)

// Probe answers capability questions about one device. Every query is
// fail-safe: a device error yields the unsupported value (false, 0,
// Version{}) and a debug log line, never an error.
type Probe struct {
	dev    Device
	log    logger.Logger
	target gpu.Target
	forced bool
}

// Option configures a Probe.
type Option func(*Probe)

// WithLogger sets the logger used to report device errors.
func WithLogger(log logger.Logger) Option {
	return func(p *Probe) {
		if log != nil {
			p.log = log
		}
	}
}

// WithTarget skips name-based target detection.
func WithTarget(t gpu.Target) Option {
	return func(p *Probe) {
		p.target = t
		p.forced = true
	}
}

// NewProbe binds a probe to dev and resolves the GPU target once.
func NewProbe(dev Device, opts ...Option) *Probe {
	p := &Probe{
		dev: dev,
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.forced {
		p.target = p.detectTarget()
	}
	return p
}

func (p *Probe) detectTarget() gpu.Target {
	name, err := p.dev.Name()
	if err != nil {
		p.log.Debug("device name unavailable, assuming midgard", "error", err)
		return gpu.Midgard
	}
	t, ok := gpu.FromDeviceName(name)
	if !ok {
		p.log.Debug("unrecognised gpu, using midgard tables", "device", name)
	}
	return t
}

// TargetFamily returns the resolved GPU target.
func (p *Probe) TargetFamily() gpu.Target {
	return p.target
}

// DeviceName returns the device name, or "" when unavailable.
func (p *Probe) DeviceName() string {
	name, err := p.dev.Name()
	if err != nil {
		p.log.Debug("device query failed", "query", "name", "error", err)
		return ""
	}
	return name
}

func (p *Probe) HighestSupportedVersion() Version {
	s, err := p.dev.Version()
	if err != nil {
		p.log.Debug("device query failed", "query", "version", "error", err)
		return Version{}
	}
	return ParseVersion(s)
}

// Extensions returns the advertised extension list.
func (p *Probe) Extensions() []string {
	s, err := p.dev.Extensions()
	if err != nil {
		p.log.Debug("device query failed", "query", "extensions", "error", err)
		return nil
	}
	return strings.Fields(s)
}

func (p *Probe) ExtensionSupported(name string) bool {
	for _, ext := range p.Extensions() {
		if ext == name {
			return true
		}
	}
	return false
}

func (p *Probe) info(param InfoParam) uint64 {
	v, err := p.dev.Info(param)
	if err != nil {
		p.log.Debug("device query failed", "query", param.String(), "error", err)
		return 0
	}
	return v
}

// TexturePitchAlignmentPixels returns 0 when the alignment is unavailable.
func (p *Probe) TexturePitchAlignmentPixels() uint64 {
	return p.info(ImagePitchAlignment)
}

func (p *Probe) MaxTextureWidthPixels() uint64 {
	return p.info(Image2DMaxWidth)
}

func (p *Probe) MaxTextureHeightPixels() uint64 {
	return p.info(Image2DMaxHeight)
}

func (p *Probe) ComputeUnits() uint64 {
	return p.info(MaxComputeUnits)
}

func (p *Probe) FP16Supported() bool {
	return p.ExtensionSupported(ExtFP16)
}

func (p *Probe) DotProductSupported() bool {
	return p.ExtensionSupported(ExtDotProduct)
}

func (p *Probe) DotProductAccumulateSupported() bool {
	return p.ExtensionSupported(ExtDotProductAccumulate)
}

// NonUniformWorkgroupSupported is true on OpenCL 2.0+ or with the Arm extension.
func (p *Probe) NonUniformWorkgroupSupported() bool {
	return p.HighestSupportedVersion().AtLeast(2, 0) || p.ExtensionSupported(ExtNonUniformWorkGroupSize)
}

func (p *Probe) TextureFromBufferSupported() bool {
	return p.ExtensionSupported(ExtImage2DFromBuffer)
}

func (p *Probe) MatrixMultiplyExtensionSupported() bool {
	return p.ExtensionSupported(ExtMatrixMultiply)
}

// Summary is a snapshot of every probe query.
type Summary struct {
	Name                    string   `json:"name"`
	Target                  string   `json:"target"`
	Arch                    string   `json:"arch"`
	Version                 string   `json:"version"`
	Extensions              []string `json:"extensions"`
	PitchAlignment          uint64   `json:"pitch_alignment_pixels"`
	MaxTextureWidth         uint64   `json:"max_texture_width_pixels"`
	MaxTextureHeight        uint64   `json:"max_texture_height_pixels"`
	ComputeUnits            uint64   `json:"compute_units"`
	FP16                    bool     `json:"fp16"`
	DotProduct              bool     `json:"dot_product"`
	DotProductAccumulate    bool     `json:"dot_product_accumulate"`
	NonUniformWorkgroup     bool     `json:"non_uniform_workgroup"`
	TextureFromBuffer       bool     `json:"texture_from_buffer"`
	MatrixMultiplyExtension bool     `json:"matrix_multiply_extension"`
}

// Summarize runs every query once.
func (p *Probe) Summarize() Summary {
	return Summary{
		Name:                    p.DeviceName(),
		Target:                  p.target.String(),
		Arch:                    p.target.Arch().String(),
		Version:                 p.HighestSupportedVersion().String(),
		Extensions:              p.Extensions(),
		PitchAlignment:          p.TexturePitchAlignmentPixels(),
		MaxTextureWidth:         p.MaxTextureWidthPixels(),
		MaxTextureHeight:        p.MaxTextureHeightPixels(),
		ComputeUnits:            p.ComputeUnits(),
		FP16:                    p.FP16Supported(),
		DotProduct:              p.DotProductSupported(),
		DotProductAccumulate:    p.DotProductAccumulateSupported(),
		NonUniformWorkgroup:     p.NonUniformWorkgroupSupported(),
		TextureFromBuffer:       p.TextureFromBufferSupported(),
		MatrixMultiplyExtension: p.MatrixMultiplyExtensionSupported(),
	}
}
