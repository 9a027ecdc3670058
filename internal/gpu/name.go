package gpu

import (
	"regexp"
	"strings"
)

var maliRegex = regexp.MustCompile(`Mali-(\S+)`)

var bifrostNames = map[string]Target{
	"G71":    G71,
	"G72":    G72,
	"G51":    G51,
	"G51BIG": G51BIG,
	"G51LIT": G51LIT,
	"G52":    G52,
	"G52LIT": G52LIT,
	"G76":    G76,
}

var valhallNames = map[string]Target{
	"G77":  G77,
	"G57":  G57,
	"G78":  G78,
	"G710": G710,
	"G610": G610,
	"G715": G715,
	"G615": G615,
}

var midgardNames = map[string]Target{
	"T600": T600,
	"T700": T700,
	"T800": T800,
}

// FromDeviceName resolves the target from an OpenCL device name such as
// "Mali-G76 r0p0". When nothing matches, Midgard is returned with ok=false
// so the caller can report the fallback.
func FromDeviceName(name string) (t Target, ok bool) {
	parts := maliRegex.FindStringSubmatch(name)
	if parts == nil {
		return Midgard, false
	}
	version := strings.ToUpper(parts[1])

	switch version[0] {
	case 'G':
		if t, found := bifrostNames[version]; found {
			return t, true
		}
		if t, found := valhallNames[version]; found {
			return t, true
		}
	case 'T':
		if t, found := midgardNames[version]; found {
			return t, true
		}
		// Unlisted Midgard parts share the family tables.
		return Midgard, true
	}
	return Midgard, false
}
