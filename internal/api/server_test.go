package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
)

func newTestEcho(t *testing.T, opts ...ServerOption) (*echo.Echo, *Server) {
	t.Helper()
	return newLimitedEcho(t, nil, opts...)
}

func newLimitedEcho(t *testing.T, limit echo.MiddlewareFunc, opts ...ServerOption) (*echo.Echo, *Server) {
	t.Helper()
	profile, err := device.BuiltinProfile(gpu.G76)
	if err != nil {
		t.Fatalf("builtin profile: %v", err)
	}
	probe := device.NewProbe(profile.Device())
	server := NewServer(dispatch.NewCache(dispatch.New(probe)), probe, opts...)
	e := echo.New()
	if limit != nil {
		e.Use(limit)
	}
	server.Register(e)
	return e, server
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSelectAndFetch(t *testing.T) {
	t.Parallel()

	e, server := newTestEcho(t)
	rec := doJSON(t, e, http.MethodPost, "/v1/gemm/select", `{"m":1,"n":1000,"k":512,"data_type":"f32","rhs_constant":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("select status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var created Selection
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if !strings.HasPrefix(created.ID, "sel_") {
		t.Fatalf("id: got %q", created.ID)
	}
	if created.Kernel != gemm.ReshapedOnlyRHS {
		t.Fatalf("kernel: got %s", created.Kernel)
	}
	if created.Target != gpu.G76 {
		t.Fatalf("target: got %s", created.Target)
	}
	if created.RHS.H0 != 500 || created.RHS.N0 != 2 {
		t.Fatalf("rhs: got %s", created.RHS)
	}
	if len(created.ReshapedRHS) != 3 || created.ReshapedRHS[0] != 512000 {
		t.Fatalf("reshaped rhs: got %v", created.ReshapedRHS)
	}
	if server.store.Len() != 1 {
		t.Fatalf("store: got %d entries", server.store.Len())
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/gemm/select/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var fetched Selection
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode fetched: %v", err)
	}
	if fetched.ID != created.ID || fetched.RHS != created.RHS {
		t.Fatalf("fetched %+v, want %+v", fetched, created)
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/gemm/select/sel_missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status: got %d", rec.Code)
	}
}

func TestSelectStatusCodes(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(t)
	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{"m":`, http.StatusBadRequest},
		{"unknown field", `{"m":1,"n":1,"k":1,"data_type":"f32","x":1}`, http.StatusBadRequest},
		{"missing type", `{"m":1,"n":1,"k":1}`, http.StatusBadRequest},
		{"unknown type", `{"m":1,"n":1,"k":1,"data_type":"f64"}`, http.StatusBadRequest},
		{"zero dim", `{"m":0,"n":1,"k":1,"data_type":"f32"}`, http.StatusBadRequest},
		{"negative batch", `{"m":1,"n":1,"k":1,"b":-2,"data_type":"f32"}`, http.StatusBadRequest},
		{"unsupported type", `{"m":8,"n":8,"k":8,"data_type":"bf16","rhs_constant":true}`, http.StatusUnprocessableEntity},
		{"quantized", `{"m":64,"n":64,"k":64,"b":2,"data_type":"qasymm8"}`, http.StatusOK},
		{"f16 dynamic rhs", `{"m":64,"n":64,"k":64,"data_type":"f16"}`, http.StatusOK},
		{"f16 vector", `{"m":1,"n":4096,"k":64,"data_type":"f16","rhs_constant":true}`, http.StatusOK},
	}
	for _, tc := range tests {
		rec := doJSON(t, e, http.MethodPost, "/v1/gemm/select", tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s: got %d want %d body=%s", tc.name, rec.Code, tc.want, rec.Body.String())
		}
		if tc.want == http.StatusOK {
			continue
		}
		var body map[string]ResponseError
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode error body: %v", tc.name, err)
		}
		if body["error"].Message == "" {
			t.Fatalf("%s: empty error message", tc.name)
		}
	}
}

func TestDeviceAndTargets(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(t)
	rec := doJSON(t, e, http.MethodGet, "/v1/device", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("device status: got %d", rec.Code)
	}
	var summary device.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Target != "g76" || summary.Arch != "bifrost" {
		t.Fatalf("summary: got %+v", summary)
	}
	if !summary.DotProduct {
		t.Fatalf("g76 should report dot product")
	}

	rec = doJSON(t, e, http.MethodGet, "/v1/targets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("targets status: got %d", rec.Code)
	}
	var list TargetList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode targets: %v", err)
	}
	if len(list.Data) != len(gpu.Targets()) {
		t.Fatalf("targets: got %d want %d", len(list.Data), len(gpu.Targets()))
	}
}

func TestNEONSelect(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(t, WithCPUFeatures(device.CPUFeatures{ASIMD: true, DotProd: true}))
	rec := doJSON(t, e, http.MethodPost, "/v1/neon/select", `{"m":64,"n":64,"k":256,"data_type":"qasymm8_signed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("neon status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var sel NEONSelection
	if err := json.Unmarshal(rec.Body.Bytes(), &sel); err != nil {
		t.Fatalf("decode neon: %v", err)
	}
	if sel.Method.Name != "a64_gemm_s8_12x8" {
		t.Fatalf("method: got %s", sel.Method.Name)
	}
	if sel.Blocking.TileK != 32 || sel.Blocking.TileN != 36 {
		t.Fatalf("blocking: got %+v", sel.Blocking)
	}

	rec = doJSON(t, e, http.MethodPost, "/v1/neon/select", `{"m":64,"n":64,"k":256,"data_type":"f16"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("f16 without fp16: got %d", rec.Code)
	}

	e, _ = newTestEcho(t, WithCPUFeatures(device.CPUFeatures{}))
	rec = doJSON(t, e, http.MethodPost, "/v1/neon/select", `{"m":64,"n":64,"k":256,"data_type":"f32"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("no asimd: got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	e, _ := newLimitedEcho(t, RateLimit(0.001, 1))

	rec := doJSON(t, e, http.MethodGet, "/v1/targets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d", rec.Code)
	}
	rec = doJSON(t, e, http.MethodGet, "/v1/targets", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	e, _ := newLimitedEcho(t, RateLimit(0, 0))
	for i := range 5 {
		if rec := doJSON(t, e, http.MethodGet, "/v1/targets", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, rec.Code)
		}
	}
}
