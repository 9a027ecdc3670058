package version

import (
	"runtime/debug"
	"testing"
)

func TestResolveFromBuildInfo(t *testing.T) {
	info := resolve(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.3.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			},
		}, true
	})
	if info.Version != "v0.3.1" {
		t.Fatalf("expected module version, got %q", info.Version)
	}
	if info.BuildTime != "2026-01-02T03:04:05Z" {
		t.Fatalf("expected vcs time, got %q", info.BuildTime)
	}
	if got := info.String(); got != "v0.3.1 (0123456789ab)" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestResolveWithoutBuildInfo(t *testing.T) {
	info := resolve(func() (*debug.BuildInfo, bool) { return nil, false })
	if Version == "" && info.Version != "dev" {
		t.Fatalf("expected dev fallback, got %q", info.Version)
	}
	if info.GoVersion == "" {
		t.Fatal("expected go version")
	}
}

func TestDevelVersionIgnored(t *testing.T) {
	info := resolve(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	})
	if Version == "" && info.Version != "dev" {
		t.Fatalf("expected dev for (devel), got %q", info.Version)
	}
}

func TestShortCommit(t *testing.T) {
	t.Parallel()
	if got := shortCommit("abc"); got != "abc" {
		t.Fatalf("short commit changed: %q", got)
	}
	if got := shortCommit("0123456789abcdef"); got != "0123456789ab" {
		t.Fatalf("unexpected truncation %q", got)
	}
}
