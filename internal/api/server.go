// Package api serves GEMM configuration over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/dtype"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gpu"
	"github.com/samcharles93/gemmtune/internal/logger"
	"github.com/samcharles93/gemmtune/internal/neon"
)

// Summarizer reports the device the dispatcher was built for.
// *device.Probe satisfies it.
type Summarizer interface {
	Summarize() device.Summary
}

type Server struct {
	cache    *dispatch.Cache
	device   Summarizer
	store    *SelectionStore
	features device.CPUFeatures
	log      logger.Logger
	clock    func() time.Time
}

type ServerOption func(*Server)

func WithLogger(log logger.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCPUFeatures overrides the host features used by the NEON route.
func WithCPUFeatures(f device.CPUFeatures) ServerOption {
	return func(s *Server) {
		s.features = f
	}
}

func WithStore(store *SelectionStore) ServerOption {
	return func(s *Server) {
		if store != nil {
			s.store = store
		}
	}
}

func NewServer(cache *dispatch.Cache, dev Summarizer, opts ...ServerOption) *Server {
	s := &Server{
		cache:    cache,
		device:   dev,
		store:    NewSelectionStore(DefaultStoreCapacity),
		features: device.HostFeatures(),
		log:      logger.Discard(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/gemm/select", s.handleSelect)
	e.GET("/v1/gemm/select/:id", s.handleGetSelection)
	e.POST("/v1/neon/select", s.handleNEONSelect)
	e.GET("/v1/device", s.handleDevice)
	e.GET("/v1/targets", s.handleTargets)
}

func (s *Server) handleSelect(c *echo.Context) error {
	q, err := decodeQuery(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	res, err := s.cache.Select(q)
	if err != nil {
		s.log.Debug("selection failed", "query", q.String(), "error", err.Error())
		return writeEngineError(c, err)
	}
	sel := s.store.Put(Selection{
		CreatedAt: s.clock().Unix(),
		Query:     q.String(),
		Result:    res,
	})
	return c.JSON(http.StatusOK, sel)
}

func (s *Server) handleGetSelection(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return writeNotFound(c, "selection not found")
	}
	sel, ok := s.store.Get(id)
	if !ok {
		return writeNotFound(c, "selection not found")
	}
	return c.JSON(http.StatusOK, sel)
}

func (s *Server) handleNEONSelect(c *echo.Context) error {
	q, err := decodeQuery(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	method, err := neon.Select(s.features, q)
	if err != nil {
		return writeEngineError(c, err)
	}
	return c.JSON(http.StatusOK, NEONSelection{
		Features: s.features,
		Method:   method,
		Blocking: neon.Blocking(method, q.Shape()),
	})
}

func (s *Server) handleDevice(c *echo.Context) error {
	if s.device == nil {
		return writeError(c, http.StatusInternalServerError, "server_error", "device not configured", "", "")
	}
	return c.JSON(http.StatusOK, s.device.Summarize())
}

func (s *Server) handleTargets(c *echo.Context) error {
	targets := gpu.Targets()
	list := TargetList{Object: "list", Data: make([]TargetInfo, 0, len(targets))}
	for _, t := range targets {
		list.Data = append(list.Data, TargetInfo{Name: t.String(), Arch: t.Arch().String()})
	}
	return c.JSON(http.StatusOK, list)
}

func decodeQuery(c *echo.Context) (gemm.Query, error) {
	req, err := decodeJSON[SelectRequest](c.Request().Body)
	if err != nil {
		return gemm.Query{}, newInvalidRequest("invalid JSON body: " + err.Error())
	}
	if req.DataType == "" {
		return gemm.Query{}, newInvalidRequest("data_type is required")
	}
	dt, err := dtype.Parse(req.DataType)
	if err != nil {
		return gemm.Query{}, newInvalidRequest(err.Error())
	}
	q := gemm.Query{M: req.M, N: req.N, K: req.K, B: req.B, DataType: dt, RHSConstant: req.RHSConstant}
	if err := q.Shape().Validate(); err != nil {
		return gemm.Query{}, newInvalidRequest(err.Error())
	}
	return q, nil
}
