package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file is zero", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.Target != nil || cfg.RateLimit != nil {
			t.Fatalf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("fields are parsed", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "target: g76\nstrict: false\nrate_limit: 2.5\nserver_address: 0.0.0.0:9000\noutput: json\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.Target == nil || *cfg.Target != "g76" {
			t.Fatalf("target: got %v", cfg.Target)
		}
		if cfg.Strict == nil || *cfg.Strict {
			t.Fatalf("strict should be set to false, got %v", cfg.Strict)
		}
		if cfg.RateLimit == nil || *cfg.RateLimit != 2.5 {
			t.Fatalf("rate_limit: got %v", cfg.RateLimit)
		}
		if cfg.DeviceProfile != nil {
			t.Fatalf("device_profile should be unset")
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "target: [g76\n")
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func runDeviceCommand(t *testing.T, cfg Config, args ...string) deviceOptions {
	t.Helper()
	var dev deviceOptions
	cmd := &cli.Command{
		Name:  "test",
		Flags: deviceFlags(&dev),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDeviceConfig(cmd, cfg, &dev)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), append([]string{"test"}, args...)); err != nil {
		t.Fatalf("run: %v", err)
	}
	return dev
}

func TestApplyDeviceConfig(t *testing.T) {
	target := "g78"
	profile := "/etc/gemmtune/mali.yaml"
	strict := true
	cfg := Config{Target: &target, DeviceProfile: &profile, Strict: &strict}

	dev := runDeviceCommand(t, cfg)
	if dev.target != "g78" || dev.profile != profile || !dev.strict {
		t.Fatalf("config defaults not applied: %+v", dev)
	}

	dev = runDeviceCommand(t, cfg, "--target", "g71")
	if dev.target != "g71" || dev.profile != "" {
		t.Fatalf("explicit target should replace configured device: %+v", dev)
	}
	if !dev.strict {
		t.Fatalf("strict should still come from config")
	}

	dev = runDeviceCommand(t, cfg, "--strict=false")
	if dev.strict {
		t.Fatalf("explicit --strict=false should win")
	}
}

func TestApplyServeConfig(t *testing.T) {
	addr := "0.0.0.0:9000"
	limit := 3.0
	cfg := Config{ServerAddress: &addr, RateLimit: &limit}

	var (
		gotAddr  string
		gotLimit float64
	)
	cmd := &cli.Command{
		Name: "serve",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "127.0.0.1:8080", Destination: &gotAddr},
			&cli.Float64Flag{Name: "rate-limit", Value: 50, Destination: &gotLimit},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyServeConfig(cmd, cfg, &gotAddr, &gotLimit)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), []string{"serve", "--rate-limit", "7"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if gotAddr != addr {
		t.Fatalf("addr: got %q want %q", gotAddr, addr)
	}
	if gotLimit != 7 {
		t.Fatalf("explicit rate limit should win, got %v", gotLimit)
	}
}
