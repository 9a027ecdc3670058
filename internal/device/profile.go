package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Profile describes a device statically, for hosts without an OpenCL runtime
// or for answering "what would this GPU pick" questions.
type Profile struct {
	Name           string   `yaml:"name" json:"name"`
	Version        string   `yaml:"version" json:"version"`
	Extensions     []string `yaml:"extensions" json:"extensions"`
	PitchAlignment uint64   `yaml:"pitch_alignment" json:"pitch_alignment"`
	MaxImageWidth  uint64   `yaml:"max_image_width" json:"max_image_width"`
	MaxImageHeight uint64   `yaml:"max_image_height" json:"max_image_height"`
	ComputeUnits   uint64   `yaml:"compute_units" json:"compute_units"`
}

// LoadProfile reads a YAML (.yaml, .yml) or JSON (.json) profile.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return DecodeProfile(data, filepath.Ext(path))
}

// DecodeProfile decodes data according to the file extension ext.
func DecodeProfile(data []byte, ext string) (Profile, error) {
	var p Profile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("decode yaml profile: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("decode json profile: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("unsupported profile extension %q (expected .yaml, .yml or .json)", ext)
	}
	if p.Name == "" {
		return Profile{}, errors.New("profile has no device name")
	}
	return p, nil
}

// Device returns a Device answering from the profile.
func (p Profile) Device() *StaticDevice {
	return &StaticDevice{profile: p}
}

// ErrUnknownInfoParam is returned by StaticDevice.Info for unknown params.
var ErrUnknownInfoParam = errors.New("unknown device info param")

// StaticDevice implements Device from a Profile.
type StaticDevice struct {
	profile Profile
}

func (d *StaticDevice) Name() (string, error) {
	if d.profile.Name == "" {
		return "", errors.New("device has no name")
	}
	return d.profile.Name, nil
}

func (d *StaticDevice) Version() (string, error) {
	return d.profile.Version, nil
}

func (d *StaticDevice) Extensions() (string, error) {
	return strings.Join(d.profile.Extensions, " "), nil
}

func (d *StaticDevice) Info(param InfoParam) (uint64, error) {
	switch param {
	case ImagePitchAlignment:
		return d.profile.PitchAlignment, nil
	case Image2DMaxWidth:
		return d.profile.MaxImageWidth, nil
	case Image2DMaxHeight:
		return d.profile.MaxImageHeight, nil
	case MaxComputeUnits:
		return d.profile.ComputeUnits, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownInfoParam, param)
	}
}

// FailingDevice returns Err from every query. Tests use it to exercise the
// probe's fail-safe path.
type FailingDevice struct {
	Err error
}

func (d FailingDevice) err() error {
	if d.Err == nil {
		return errors.New("device unavailable")
	}
	return d.Err
}

func (d FailingDevice) Name() (string, error) { return "", d.err() }
func (d FailingDevice) Version() (string, error) { return "", d.err() }
func (d FailingDevice) Extensions() (string, error) { return "", d.err() }
func (d FailingDevice) Info(InfoParam) (uint64, error) { return 0, d.err() }
