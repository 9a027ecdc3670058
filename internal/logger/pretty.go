package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorGray    = "\033[90m"
	colorBold    = "\033[1m"
)

// Keys the pretty handler lifts out of the attribute list. A selection
// record reads as
//
//	15:04:05 DEBUG gemm selected [g76] m=64 n=64 k=64 b=1 f16 rhs_constant=true => reshaped_only_rhs lhs=... rhs=...
//
// and failures put their error or reason last, in red.
const (
	KeyTarget = "target"
	KeyQuery  = "query"
	KeyKernel = "kernel"
	KeyError  = "error"
	KeyReason = "reason"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
// Target, query and kernel attributes are rendered inline after the
// message; everything else follows as key=value pairs.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	w      io.Writer
	mu     *sync.Mutex
	prefix string
	attrs  []slog.Attr
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts: *opts,
		w:    w,
		mu:   &sync.Mutex{},
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// record is a log line split into its inline selection fields and the
// remaining attributes.
type record struct {
	target, query, kernel string
	failure               []slog.Attr
	rest                  []slog.Attr
}

func (rec *record) add(a slog.Attr) {
	switch a.Key {
	case KeyTarget:
		rec.target = a.Value.Resolve().String()
	case KeyQuery:
		rec.query = a.Value.Resolve().String()
	case KeyKernel:
		rec.kernel = a.Value.Resolve().String()
	case KeyError, KeyReason:
		rec.failure = append(rec.failure, a)
	default:
		rec.rest = append(rec.rest, a)
	}
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var rec record
	for _, a := range h.attrs {
		rec.add(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		rec.add(a)
		return true
	})

	buf := make([]byte, 0, 256)
	buf = append(buf, colorGray...)
	buf = r.Time.AppendFormat(buf, time.TimeOnly)
	buf = append(buf, colorReset...)
	buf = append(buf, ' ')
	buf = append(buf, levelColor(r.Level)...)
	buf = append(buf, colorBold...)
	buf = fmt.Appendf(buf, "%-5s", r.Level.String())
	buf = append(buf, colorReset...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	if rec.target != "" {
		buf = append(buf, ' ')
		buf = append(buf, colorMagenta...)
		buf = append(buf, '[')
		buf = append(buf, rec.target...)
		buf = append(buf, ']')
		buf = append(buf, colorReset...)
	}
	if rec.query != "" {
		buf = append(buf, ' ')
		buf = append(buf, rec.query...)
	}
	if rec.kernel != "" {
		buf = append(buf, " => "...)
		buf = append(buf, colorGreen...)
		buf = append(buf, colorBold...)
		buf = append(buf, rec.kernel...)
		buf = append(buf, colorReset...)
	}
	buf = appendAttrs(buf, rec.rest, colorCyan)
	buf = appendAttrs(buf, rec.failure, colorRed)
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// WithAttrs returns a handler that prefixes attrs to every record. Keys
// are qualified by the groups open at this point.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorBlue
	default:
		return colorGray
	}
}

func appendAttrs(buf []byte, attrs []slog.Attr, color string) []byte {
	if len(attrs) == 0 {
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, color...)
	for i, a := range attrs {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendAttr(buf, a)
	}
	return append(buf, colorReset...)
}

func appendAttr(buf []byte, a slog.Attr) []byte {
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"") {
			buf = fmt.Appendf(buf, "%q", s)
		} else {
			buf = append(buf, s...)
		}
	case slog.KindTime:
		buf = v.Time().AppendFormat(buf, time.RFC3339)
	case slog.KindDuration:
		buf = append(buf, v.Duration().String()...)
	case slog.KindGroup:
		buf = append(buf, '{')
		for i, g := range v.Group() {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendAttr(buf, g)
		}
		buf = append(buf, '}')
	default:
		buf = fmt.Append(buf, v.Any())
	}
	return buf
}
