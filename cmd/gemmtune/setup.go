package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/gpu"
	"github.com/samcharles93/gemmtune/internal/logger"
)

// prepare loads the config file and installs the logger in ctx. Every
// command calls it first so flags given after the subcommand name count.
func prepare(ctx context.Context, cmd *cli.Command) (context.Context, Config, error) {
	cfg, err := LoadConfig(configPath())
	if err != nil {
		return ctx, Config{}, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	applyLoggingConfig(cmd, cfg)

	level := logLevel
	if debug {
		level = "debug"
	}
	log, err := logger.ForFormat(os.Stderr, logFormat, level)
	if err != nil {
		return ctx, Config{}, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return logger.WithContext(ctx, log), cfg, nil
}

// openProbe resolves the device from --profile or --target. A profile wins
// for capabilities; a target given alongside it overrides name detection.
func openProbe(o deviceOptions, log logger.Logger) (*device.Probe, error) {
	opts := []device.Option{device.WithLogger(log)}

	var target gpu.Target
	if name := strings.TrimSpace(o.target); name != "" {
		t, err := gpu.ParseTarget(name)
		if err != nil {
			return nil, err
		}
		target = t
		opts = append(opts, device.WithTarget(t))
	}

	if o.profile != "" {
		profile, err := device.LoadProfile(o.profile)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded device profile", "path", o.profile, "device", profile.Name)
		return device.NewProbe(profile.Device(), opts...), nil
	}

	if o.target == "" {
		return nil, fmt.Errorf("one of --target or --profile is required")
	}
	profile, err := device.BuiltinProfile(target)
	if err != nil {
		// Family names have no stock device; answer from the target alone.
		log.Debug("no builtin profile, capabilities unknown", "target", target.String())
		return device.NewProbe(device.FailingDevice{}, opts...), nil
	}
	return device.NewProbe(profile.Device(), opts...), nil
}

func newDispatcher(o deviceOptions, log logger.Logger) (*dispatch.Dispatcher, *device.Probe, error) {
	probe, err := openProbe(o, log)
	if err != nil {
		return nil, nil, err
	}
	d := dispatch.New(probe, dispatch.WithLogger(log), dispatch.WithStrict(o.strict))
	return d, probe, nil
}
