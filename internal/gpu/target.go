package gpu

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Target identifies a GPU microarchitecture. Bits 8..11 carry the
// architecture family so Arch() is a mask.
type Target uint32

const (
	Unknown Target = 0x000

	Midgard Target = 0x100
	T600    Target = 0x110
	T700    Target = 0x120
	T800    Target = 0x130

	Bifrost Target = 0x200
	G71     Target = 0x210
	G72     Target = 0x220
	G51     Target = 0x230
	G51BIG  Target = 0x231
	G51LIT  Target = 0x232
	G52     Target = 0x240
	G52LIT  Target = 0x241
	G76     Target = 0x250

	Valhall Target = 0x300
	G77     Target = 0x310
	G57     Target = 0x320
	G78     Target = 0x330
	G710    Target = 0x360
	G610    Target = 0x370
	G715    Target = 0x3a0
	G615    Target = 0x3b0
)

const archMask Target = 0xF00

var targetNames = map[Target]string{
	Unknown: "unknown",
	Midgard: "midgard",
	T600:    "t600",
	T700:    "t700",
	T800:    "t800",
	Bifrost: "bifrost",
	G71:     "g71",
	G72:     "g72",
	G51:     "g51",
	G51BIG:  "g51big",
	G51LIT:  "g51lit",
	G52:     "g52",
	G52LIT:  "g52lit",
	G76:     "g76",
	Valhall: "valhall",
	G77:     "g77",
	G57:     "g57",
	G78:     "g78",
	G710:    "g710",
	G610:    "g610",
	G715:    "g715",
	G615:    "g615",
}

// Targets returns every concrete (non-family) target.
func Targets() []Target {
	return []Target{
		T600, T700, T800,
		G71, G72, G51, G51BIG, G51LIT, G52, G52LIT, G76,
		G77, G57, G78, G710, G610, G715, G615,
	}
}

// Arch returns the architecture family of t.
func (t Target) Arch() Target {
	return t & archMask
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("target(0x%03x)", uint32(t))
}

// Is reports whether t is one of targets.
func (t Target) Is(targets ...Target) bool {
	for _, other := range targets {
		if t == other {
			return true
		}
	}
	return false
}

// ParseTarget accepts a target or family name, optionally prefixed with "Mali-".
func ParseTarget(name string) (Target, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "mali-")
	if key == "" {
		return Unknown, errors.Errorf("empty gpu target")
	}
	for t, n := range targetNames {
		if n == key && t != Unknown {
			return t, nil
		}
	}
	return Unknown, errors.Errorf("unknown gpu target %q", name)
}

// MarshalText encodes t by name.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Target) UnmarshalText(b []byte) error {
	v, err := ParseTarget(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
