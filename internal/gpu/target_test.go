package gpu

import "testing"

func TestArch(t *testing.T) {
	t.Parallel()
	cases := map[Target]Target{
		T600:    Midgard,
		G71:     Bifrost,
		G51LIT:  Bifrost,
		G76:     Bifrost,
		G77:     Valhall,
		G78:     Valhall,
		G710:    Valhall,
		G615:    Valhall,
		Midgard: Midgard,
	}
	for target, want := range cases {
		if got := target.Arch(); got != want {
			t.Fatalf("%s.Arch() = %s, want %s", target, got, want)
		}
	}
}

func TestParseTarget(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in   string
		want Target
	}{
		{"g76", G76},
		{"Mali-G52", G52},
		{" G51LIT ", G51LIT},
		{"bifrost", Bifrost},
		{"T800", T800},
		{"mali-g715", G715},
	} {
		got, err := ParseTarget(tc.in)
		if err != nil {
			t.Fatalf("ParseTarget(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTarget(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseTarget("g999"); err == nil {
		t.Fatal("expected error for unknown target")
	}
	if _, err := ParseTarget(""); err == nil {
		t.Fatal("expected error for empty target")
	}
	if _, err := ParseTarget("unknown"); err == nil {
		t.Fatal("expected error for unknown sentinel")
	}
}

func TestFromDeviceName(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		want Target
		ok   bool
	}{
		{"Mali-G71", G71, true},
		{"Mali-G76 r0p0", G76, true},
		{"Mali-G77", G77, true},
		{"Mali-G52LIT", G52LIT, true},
		{"Mali-G710 r0p0", G710, true},
		{"Mali-G610", G610, true},
		{"Mali-G615", G615, true},
		{"Mali-T860", Midgard, true},
		{"Mali-T800", T800, true},
		{"Mali-G999", Midgard, false},
		{"Adreno 640", Midgard, false},
		{"", Midgard, false},
	} {
		got, ok := FromDeviceName(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("FromDeviceName(%q) = (%s, %v), want (%s, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTargetsAreConcrete(t *testing.T) {
	t.Parallel()
	for _, target := range Targets() {
		if target == target.Arch() {
			t.Fatalf("%s is a family, not a concrete target", target)
		}
		if target.String() == "" {
			t.Fatalf("target 0x%x has no name", uint32(target))
		}
	}
	if got := Target(0x999).String(); got != "target(0x999)" {
		t.Fatalf("unexpected fallback name %q", got)
	}
}

func TestTargetText(t *testing.T) {
	t.Parallel()
	b, err := G52LIT.MarshalText()
	if err != nil || string(b) != "g52lit" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	var got Target
	if err := got.UnmarshalText([]byte("Mali-G78")); err != nil || got != G78 {
		t.Fatalf("UnmarshalText = %s, %v", got, err)
	}
	if err := got.UnmarshalText([]byte("adreno")); err == nil {
		t.Fatal("expected error for unknown name")
	}
}
