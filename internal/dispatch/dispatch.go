// Package dispatch is the single entry point for GEMM configuration: it
// resolves the device target once and answers queries with an execution
// strategy plus the tiling parameters for that strategy.
package dispatch

import (
	"github.com/pkg/errors"

	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/gemm/strategy"
	"github.com/samcharles93/gemmtune/internal/gemm/tiling"
	"github.com/samcharles93/gemmtune/internal/gpu"
	"github.com/samcharles93/gemmtune/internal/logger"
)

// Query is one configuration request.
type Query = gemm.Query

// Prober is the device view the dispatcher reads. *device.Probe satisfies it.
type Prober interface {
	tiling.Caps
	TargetFamily() gpu.Target
}

// Result is a complete GEMM configuration. ReshapedRHS is the shape of the
// RHS after the reshape kernel and is nil for native strategies.
type Result struct {
	Target        gpu.Target       `json:"target"`
	Kernel        gemm.KernelType  `json:"kernel"`
	LHS           gemm.LHSInfo     `json:"lhs"`
	RHS           gemm.RHSInfo     `json:"rhs"`
	ReshapedRHS   gemm.TensorShape `json:"reshaped_rhs,omitempty"`
	TextureExport bool             `json:"texture_export"`
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the decision-trace logger.
func WithLogger(log logger.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithStrict makes Select fail when the chosen blocks do not pass kernel
// validation or a requested texture export is not possible, instead of
// falling back to a buffer.
func WithStrict(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// Dispatcher is immutable after New and safe for concurrent use.
type Dispatcher struct {
	target   gpu.Target
	caps     tiling.Caps
	log      logger.Logger
	strict   bool
	strategy *strategy.Selector
	tilers   map[gemm.ConfigKind]*tiling.Selector
}

// New builds a dispatcher for the device behind probe.
func New(probe Prober, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		target: probe.TargetFamily(),
		caps:   probe,
		log:    logger.Discard(),
		tilers: make(map[gemm.ConfigKind]*tiling.Selector, 3),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.strategy = strategy.New(d.target)
	for _, kind := range gemm.ConfigKinds() {
		d.tilers[kind] = tiling.New(d.target, kind, probe)
	}
	d.log.Debug("gemm dispatcher ready", "target", d.target.String(), "strict", d.strict)
	return d
}

func (d *Dispatcher) Target() gpu.Target {
	return d.target
}

func (d *Dispatcher) Strict() bool {
	return d.strict
}

// SelectStrategy returns the execution strategy for q.
func (d *Dispatcher) SelectStrategy(q Query) (gemm.KernelType, error) {
	if err := q.Shape().Validate(); err != nil {
		return 0, err
	}
	kt, err := d.strategy.Select(q)
	if err != nil {
		return 0, errors.Wrapf(err, "select %s", q)
	}
	return kt, nil
}

// Configure returns the tiling parameters of strategy kt for q. The V1
// kernels have fixed blocks and never consult a calibration table.
func (d *Dispatcher) Configure(kt gemm.KernelType, q Query) (gemm.Pair, error) {
	if kt.Legacy() {
		p, err := tiling.Legacy(d.target, kt, q.Shape(), q.DataType)
		if err != nil {
			return gemm.Pair{}, errors.Wrapf(err, "configure %s %s", kt, q)
		}
		return p, nil
	}
	tiler, ok := d.tilers[kt.Config()]
	if !ok {
		return gemm.Pair{}, errors.Wrapf(gemm.ErrInvalidArgument, "no tiling for %s", kt)
	}
	p, err := tiler.Configure(q.Shape(), q.DataType)
	if err != nil {
		return gemm.Pair{}, errors.Wrapf(err, "configure %s %s", kt, q)
	}
	return p, nil
}

// Select returns the strategy and tiling for q.
func (d *Dispatcher) Select(q Query) (Result, error) {
	kt, err := d.SelectStrategy(q)
	if err != nil {
		return Result{}, err
	}
	p, err := d.Configure(kt, q)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Target: d.target,
		Kernel: kt,
		LHS:    p.LHS,
		RHS:    p.RHS,
	}
	if d.strict {
		if err := gemm.ValidateKernelConfig(kt, res.LHS, res.RHS); err != nil {
			return Result{}, errors.Wrapf(err, "select %s", q)
		}
	}
	if kt.ReshapesRHS() {
		if err := d.reshapeRHS(&res, q); err != nil {
			return Result{}, err
		}
	}
	res.TextureExport = res.RHS.ExportToTexture

	d.log.Debug("gemm selected",
		"target", d.target.String(),
		"query", q.String(),
		"kernel", kt.String(),
		"lhs", res.LHS.String(),
		"rhs", res.RHS.String(),
	)
	return res, nil
}

// reshapeRHS fills in the reshaped RHS shape and re-checks a requested
// texture export against the device.
func (d *Dispatcher) reshapeRHS(res *Result, q Query) error {
	s := q.Shape()
	reshaped, err := gemm.ReshapedRHSShape(gemm.TensorShape{s.N, s.K, s.B}, res.RHS)
	if err != nil {
		return errors.Wrapf(err, "select %s", q)
	}
	res.ReshapedRHS = reshaped

	err = gemm.ValidateTextureExport(reshaped, q.DataType, res.RHS, d.caps)
	if err == nil {
		return nil
	}
	if d.strict || !gemm.IsRecoverable(err) {
		return errors.Wrapf(err, "select %s", q)
	}
	d.log.Debug("texture export unavailable, using buffer", "query", q.String(), "reason", err.Error())
	res.RHS.ExportToTexture = false
	return nil
}
