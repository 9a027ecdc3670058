package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gemmtune/internal/backend"
	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/logger"
	"github.com/samcharles93/gemmtune/internal/neon"
)

// selectOutput is the JSON form of one select run.
type selectOutput struct {
	Query gemm.Query       `json:"query"`
	GPU   *dispatch.Result `json:"gpu,omitempty"`
	CPU   *neonOutput      `json:"cpu,omitempty"`
}

type neonOutput struct {
	Features device.CPUFeatures `json:"features"`
	Method   neon.Method        `json:"method"`
	Blocking neon.BlockConfig   `json:"blocking"`
}

func selectCmd() *cli.Command {
	var (
		m, n, k, b  int64
		dataType    string
		rhsConstant bool
		backendName string
		output      string
		dev         deviceOptions
	)

	flags := []cli.Flag{
		&cli.Int64Flag{Name: "m", Usage: "output rows", Required: true, Destination: &m},
		&cli.Int64Flag{Name: "n", Usage: "output columns", Required: true, Destination: &n},
		&cli.Int64Flag{Name: "k", Usage: "reduction depth", Required: true, Destination: &k},
		&cli.Int64Flag{Name: "b", Usage: "batch count", Value: 1, Destination: &b},
		&cli.StringFlag{
			Name:        "data-type",
			Aliases:     []string{"dt"},
			Usage:       "operand data type (f32, f16, qasymm8, qasymm8_signed, ...)",
			Value:       "f32",
			Destination: &dataType,
		},
		&cli.BoolFlag{
			Name:        "rhs-constant",
			Usage:       "the RHS matrix is constant across runs (allows reshaping it once)",
			Destination: &rhsConstant,
		},
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "where to select for: gpu (Mali), cpu (host NEON), all, or auto",
			Value:       backend.Auto,
			Destination: &backendName,
		},
		outputFlag(&output),
	}

	return &cli.Command{
		Name:  "select",
		Usage: "Select the GEMM strategy and tiling for one problem",
		Flags: append(flags, deviceFlags(&dev)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}
			applyDeviceConfig(cmd, cfg, &dev)
			applyOutputConfig(cmd, cfg, &output)
			applyBackendConfig(cmd, cfg, &backendName)
			log := logger.FromContext(ctx)
			host := device.HostFeatures()

			plan, err := backend.Resolve(backendName, dev.target != "" || dev.profile != "", host)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v (available: %s)", err, backend.Available(host)), 1)
			}

			dt, err := dtype.Parse(dataType)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			q := gemm.Query{M: int(m), N: int(n), K: int(k), B: int(b), DataType: dt, RHSConstant: rhsConstant}
			out := selectOutput{Query: q}

			if plan.GPU {
				d, _, err := newDispatcher(dev, log)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				res, err := d.Select(q)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				out.GPU = &res
			}
			if plan.CPU {
				cpu, err := selectNEON(host, q)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				out.CPU = cpu
			}

			if output == outputJSON {
				return writeJSON(os.Stdout, out)
			}
			if out.GPU != nil {
				if err := renderSelection(os.Stdout, q, *out.GPU); err != nil {
					return err
				}
			}
			if out.CPU != nil {
				return renderNEON(os.Stdout, out.CPU.Features, out.CPU.Method, out.CPU.Blocking)
			}
			return nil
		},
	}
}

func selectNEON(f device.CPUFeatures, q gemm.Query) (*neonOutput, error) {
	method, err := neon.Select(f, q)
	if err != nil {
		return nil, err
	}
	return &neonOutput{
		Features: f,
		Method:   method,
		Blocking: neon.Blocking(method, q.Shape()),
	}, nil
}
