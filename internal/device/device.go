package device

import (
	"fmt"
	"regexp"
	"strconv"
)

// InfoParam names a numeric device limit.
type InfoParam int

const (
	ImagePitchAlignment InfoParam = iota + 1
	Image2DMaxWidth
	Image2DMaxHeight
	MaxComputeUnits
)

func (p InfoParam) String() string {
	switch p {
	case ImagePitchAlignment:
		return "image_pitch_alignment"
	case Image2DMaxWidth:
		return "image2d_max_width"
	case Image2DMaxHeight:
		return "image2d_max_height"
	case MaxComputeUnits:
		return "max_compute_units"
	default:
		return fmt.Sprintf("info_param(%d)", int(p))
	}
}

// Device is the handle to a bound compute device. Implementations are owned
// by the surrounding runtime; the probe only reads from them.
type Device interface {
	Name() (string, error)
	Version() (string, error)
	Extensions() (string, error)
	Info(param InfoParam) (uint64, error)
}

// Version is an OpenCL platform/device version. The zero value means the
// version could not be determined.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
}

var versionRegex = regexp.MustCompile(`OpenCL (\d+)\.(\d+)`)

// ParseVersion extracts the version from strings such as
// "OpenCL 3.0 v1.r32p1". Anything else yields Version{}.
func ParseVersion(s string) Version {
	parts := versionRegex.FindStringSubmatch(s)
	if parts == nil {
		return Version{}
	}
	major, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}
	}
	minor, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}
	}
	return Version{Major: major, Minor: minor}
}

// AtLeast reports whether v >= major.minor.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) String() string {
	if v.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("OpenCL %d.%d", v.Major, v.Minor)
}
