package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

type targetRow struct {
	Name         string `json:"name"`
	Arch         string `json:"arch"`
	Device       string `json:"device,omitempty"`
	DotProduct   bool   `json:"dot_product"`
	ImageFromBuf bool   `json:"image2d_from_buffer"`
}

func targetRows() []targetRow {
	targets := gpu.Targets()
	rows := make([]targetRow, 0, len(targets))
	for _, t := range targets {
		row := targetRow{Name: t.String(), Arch: t.Arch().String()}
		if p, err := device.BuiltinProfile(t); err == nil {
			probe := device.NewProbe(p.Device(), device.WithTarget(t))
			row.Device = p.Name
			row.DotProduct = probe.DotProductSupported()
			row.ImageFromBuf = probe.TextureFromBufferSupported()
		}
		rows = append(rows, row)
	}
	return rows
}

func renderTargets(w io.Writer, rows []targetRow) error {
	t := newTable(nil, "target", "arch", "builtin device", "dot product", "image2d from buffer")
	for _, r := range rows {
		t.Row(r.Name, r.Arch, r.Device, strconv.FormatBool(r.DotProduct), strconv.FormatBool(r.ImageFromBuf))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func targetsCmd() *cli.Command {
	var output string

	return &cli.Command{
		Name:  "targets",
		Usage: "List known GPU targets and their builtin profiles",
		Flags: []cli.Flag{outputFlag(&output)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}
			applyOutputConfig(cmd, cfg, &output)

			rows := targetRows()
			if output == outputJSON {
				return writeJSON(os.Stdout, rows)
			}
			return renderTargets(os.Stdout, rows)
		},
	}
}
