package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/logger"
)

type probeOutput struct {
	Device device.Summary     `json:"device"`
	Host   device.CPUFeatures `json:"host"`
}

func probeCmd() *cli.Command {
	var (
		output string
		dev    deviceOptions
	)

	return &cli.Command{
		Name:  "probe",
		Usage: "Show every capability query for a device",
		Flags: append(deviceFlags(&dev), outputFlag(&output)),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}
			applyDeviceConfig(cmd, cfg, &dev)
			applyOutputConfig(cmd, cfg, &output)

			probe, err := openProbe(dev, logger.FromContext(ctx))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			out := probeOutput{Device: probe.Summarize(), Host: device.HostFeatures()}
			if output == outputJSON {
				return writeJSON(os.Stdout, out)
			}
			return renderSummary(os.Stdout, out.Device, out.Host)
		},
	}
}
