package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("selected kernel", "kernel", "reshaped_only_rhs")

	output := buf.String()
	if !strings.Contains(output, "selected kernel") {
		t.Fatalf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, `"kernel":"reshaped_only_rhs"`) {
		t.Fatalf("expected kernel attribute in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"level":"INFO"`) {
		t.Fatalf("expected level INFO in output, got: %s", output)
	}
}

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Debug("hidden too")
	if buf.Len() > 0 {
		t.Fatalf("expected no output below warn, got: %s", buf.String())
	}
	log.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected warn message, got: %s", buf.String())
	}
}

func TestPretty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo)
	log.Info("tiling", "m0", 4, "target", "g76", "note", "two words")

	output := buf.String()
	for _, want := range []string{"tiling", "m0=4", "[g76]", `note="two words"`, "INFO"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Count(output, "\n") != 1 {
		t.Fatalf("expected a single line, got: %q", output)
	}
}

func TestPrettyWithAndGroup(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelDebug).With("strict", true).WithGroup("rhs").With("h0", 8)
	log.Debug("candidate", "n0", 4)

	output := buf.String()
	for _, want := range []string{"strict=true", "rhs.h0=8", "rhs.n0=4"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "rhs.strict") {
		t.Fatalf("attr added before the group was qualified: %s", output)
	}
}

func TestPrettySelectionLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelDebug).With("target", "g77")
	log.Debug("gemm selected",
		"query", "m=64 n=64 k=64 b=1 f16 rhs_constant=true",
		"kernel", "reshaped_only_rhs",
		"lhs", "m0=2",
		"error", "texture export unavailable",
	)

	output := buf.String()
	target := strings.Index(output, "[g77]")
	query := strings.Index(output, "m=64 n=64 k=64 b=1 f16 rhs_constant=true")
	kernel := strings.Index(output, "=> "+colorGreen+colorBold+"reshaped_only_rhs")
	lhs := strings.Index(output, "lhs=m0=2")
	failure := strings.Index(output, colorRed+`error="texture export unavailable"`)
	for name, at := range map[string]int{"target": target, "query": query, "kernel": kernel, "lhs": lhs, "error": failure} {
		if at < 0 {
			t.Fatalf("%s missing from output: %q", name, output)
		}
	}
	if !(target < query && query < kernel && kernel < lhs && lhs < failure) {
		t.Fatalf("fields out of order: %q", output)
	}
	for _, key := range []string{"target=", "query=", "kernel="} {
		if strings.Contains(output, key) {
			t.Fatalf("inline field rendered as %s pair: %q", key, output)
		}
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	t.Parallel()
	h := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at warn level")
	}
	if !NewPrettyHandler(&bytes.Buffer{}, nil).Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info enabled with nil options")
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := Discard()
	log.Error("dropped")
	log.With("k", "v").WithGroup("g").Info("dropped")
}

func TestForFormat(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"", "pretty", "JSON", "text"} {
		var buf bytes.Buffer
		log, err := ForFormat(&buf, format, "debug")
		if err != nil {
			t.Fatalf("ForFormat(%q): %v", format, err)
		}
		log.Debug("ready")
		if !strings.Contains(buf.String(), "ready") {
			t.Fatalf("format %q: expected debug output, got: %s", format, buf.String())
		}
	}
	if _, err := ForFormat(&bytes.Buffer{}, "xml", "info"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), JSON(&buf, slog.LevelInfo))
	FromContext(ctx).Info("roundtrip")
	if !strings.Contains(buf.String(), "roundtrip") {
		t.Fatalf("expected message via context logger, got: %s", buf.String())
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext without logger returned nil")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.expected {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}
