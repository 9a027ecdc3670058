package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/logger"
)

type batchEntry struct {
	M           int    `yaml:"m" json:"m"`
	N           int    `yaml:"n" json:"n"`
	K           int    `yaml:"k" json:"k"`
	B           int    `yaml:"b" json:"b"`
	DataType    string `yaml:"data_type" json:"data_type"`
	RHSConstant bool   `yaml:"rhs_constant" json:"rhs_constant"`
}

type batchFile struct {
	Queries []batchEntry `yaml:"queries" json:"queries"`
}

type batchResult struct {
	Query  gemm.Query       `json:"query"`
	Result *dispatch.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// parseBatch decodes a batch file. ext picks the decoder; data types are
// resolved here so a typo fails the whole file before any selection runs.
func parseBatch(data []byte, ext string) ([]gemm.Query, error) {
	var f batchFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode yaml batch: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode json batch: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported batch extension %q (expected .yaml, .yml or .json)", ext)
	}
	if len(f.Queries) == 0 {
		return nil, fmt.Errorf("batch has no queries")
	}

	queries := make([]gemm.Query, 0, len(f.Queries))
	for i, e := range f.Queries {
		dt, err := dtype.Parse(e.DataType)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		queries = append(queries, gemm.Query{M: e.M, N: e.N, K: e.K, B: e.B, DataType: dt, RHSConstant: e.RHSConstant})
	}
	return queries, nil
}

// Batches at least this long show a progress bar on stderr.
const batchProgressMin = 256

// runBatch selects every query, recording failures per entry. step, when
// non-nil, is called after each query.
func runBatch(c *dispatch.Cache, queries []gemm.Query, step func()) ([]batchResult, int) {
	results := make([]batchResult, 0, len(queries))
	failed := 0
	for _, q := range queries {
		r := batchResult{Query: q}
		res, err := c.Select(q)
		if err != nil {
			r.Error = err.Error()
			failed++
		} else {
			r.Result = &res
		}
		results = append(results, r)
		if step != nil {
			step()
		}
	}
	return results, failed
}

func newBatchProgress(n int) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("selecting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func batchCmd() *cli.Command {
	var (
		output string
		dev    deviceOptions
	)

	return &cli.Command{
		Name:      "batch",
		Usage:     "Select configurations for every query in a YAML or JSON file",
		ArgsUsage: "FILE",
		Flags:     append(deviceFlags(&dev), outputFlag(&output)),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd)
			if err != nil {
				return err
			}
			applyDeviceConfig(cmd, cfg, &dev)
			applyOutputConfig(cmd, cfg, &output)
			log := logger.FromContext(ctx)

			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("error: batch FILE is required", 1)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			queries, err := parseBatch(data, filepath.Ext(path))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			d, _, err := newDispatcher(dev, log)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			cache := dispatch.NewCache(d)
			var (
				bar  *progressbar.ProgressBar
				step func()
			)
			if output == outputPretty && len(queries) >= batchProgressMin {
				bar = newBatchProgress(len(queries))
				step = func() { _ = bar.Add(1) }
			}
			results, failed := runBatch(cache, queries, step)
			if bar != nil {
				_ = bar.Finish()
			}
			log.Debug("batch done", "queries", len(queries), "distinct", cache.Len(), "failed", failed)

			if output == outputJSON {
				err = writeJSON(os.Stdout, results)
			} else {
				err = renderBatch(os.Stdout, results)
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d queries failed", failed, len(queries)), 1)
			}
			return nil
		},
	}
}

func renderBatch(w io.Writer, results []batchResult) error {
	reds := make(map[int]bool)
	t := newTable(reds, "#", "query", "kernel", "lhs", "rhs", "texture")
	for i, r := range results {
		if r.Result == nil {
			reds[i] = true
			t.Row(strconv.Itoa(i), r.Query.String(), "error", r.Error, "", "")
			continue
		}
		t.Row(strconv.Itoa(i), r.Query.String(), r.Result.Kernel.String(), r.Result.LHS.String(), r.Result.RHS.String(), strconv.FormatBool(r.Result.TextureExport))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
