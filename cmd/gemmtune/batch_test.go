package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

const yamlBatch = `
queries:
  - {m: 1, n: 1000, k: 512, data_type: f32, rhs_constant: true}
  - {m: 64, n: 64, k: 64, b: 4, data_type: fp16, rhs_constant: true}
  - {m: 8, n: 8, k: 8, data_type: bf16, rhs_constant: true}
`

func TestParseBatch(t *testing.T) {
	t.Parallel()

	queries, err := parseBatch([]byte(yamlBatch), ".yaml")
	if err != nil {
		t.Fatalf("parseBatch yaml: %v", err)
	}
	if len(queries) != 3 {
		t.Fatalf("queries: got %d want 3", len(queries))
	}
	want := gemm.Query{M: 1, N: 1000, K: 512, DataType: dtype.F32, RHSConstant: true}
	if queries[0] != want {
		t.Fatalf("query 0: got %+v want %+v", queries[0], want)
	}
	if queries[1].DataType != dtype.F16 || queries[1].B != 4 {
		t.Fatalf("query 1: got %+v", queries[1])
	}

	queries, err = parseBatch([]byte(`{"queries":[{"m":2,"n":3,"k":4,"data_type":"qasymm8"}]}`), ".JSON")
	if err != nil {
		t.Fatalf("parseBatch json: %v", err)
	}
	if queries[0].DataType != dtype.QASYMM8 {
		t.Fatalf("json data type: got %s", queries[0].DataType)
	}

	for name, input := range map[string]struct{ data, ext string }{
		"bad type":  {`{"queries":[{"m":2,"n":3,"k":4,"data_type":"f64"}]}`, ".json"},
		"empty":     {`queries: []`, ".yaml"},
		"extension": {yamlBatch, ".toml"},
		"malformed": {`queries: [`, ".yml"},
	} {
		if _, err := parseBatch([]byte(input.data), input.ext); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestRunBatch(t *testing.T) {
	t.Parallel()

	queries, err := parseBatch([]byte(yamlBatch), ".yaml")
	if err != nil {
		t.Fatalf("parseBatch: %v", err)
	}
	profile, err := device.BuiltinProfile(gpu.G76)
	if err != nil {
		t.Fatalf("builtin profile: %v", err)
	}
	cache := dispatch.NewCache(dispatch.New(device.NewProbe(profile.Device())))

	steps := 0
	results, failed := runBatch(cache, queries, func() { steps++ })
	if steps != len(queries) {
		t.Fatalf("steps: got %d want %d", steps, len(queries))
	}
	if failed != 1 {
		t.Fatalf("failed: got %d want 1", failed)
	}
	if results[0].Result == nil || results[0].Result.Kernel != gemm.ReshapedOnlyRHS {
		t.Fatalf("result 0: got %+v", results[0])
	}
	if results[2].Result != nil || results[2].Error == "" {
		t.Fatalf("result 2 should carry an error: %+v", results[2])
	}
	if cache.Len() != 2 {
		t.Fatalf("cache: got %d entries want 2", cache.Len())
	}

	var buf bytes.Buffer
	if err := renderBatch(&buf, results); err != nil {
		t.Fatalf("renderBatch: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"reshaped_only_rhs", "error", "m=64 n=64 k=64 b=4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered batch missing %q:\n%s", want, out)
		}
	}
}
