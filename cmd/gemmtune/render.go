package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/samcharles93/gemmtune/internal/device"
	"github.com/samcharles93/gemmtune/internal/dispatch"
	"github.com/samcharles93/gemmtune/internal/gemm"
	"github.com/samcharles93/gemmtune/internal/neon"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	redRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// newTable returns a bordered table. Rows listed in reds render in red.
func newTable(reds map[int]bool, headers ...string) *lgtable.Table {
	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row < 0:
				return headerRowStyle
			case reds[row]:
				return redRowStyle
			case row%2 == 0:
				return oddRowStyle
			default:
				return evenRowStyle
			}
		})
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	return t
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// reshapedSize is the element count and byte size of a reshaped RHS.
func reshapedSize(shape gemm.TensorShape, elemSize int) (uint64, uint64) {
	if len(shape) == 0 {
		return 0, 0
	}
	elems := uint64(shape.Elements())
	return elems, elems * uint64(elemSize)
}

func renderSelection(w io.Writer, q gemm.Query, res dispatch.Result) error {
	t := newTable(nil, "field", "value")
	t.Row("query", q.String())
	t.Row("target", res.Target.String())
	t.Row("kernel", res.Kernel.String())
	t.Row("lhs", res.LHS.String())
	t.Row("rhs", res.RHS.String())
	if res.ReshapedRHS != nil {
		elems, bytes := reshapedSize(res.ReshapedRHS, q.DataType.Size())
		t.Row("reshaped rhs", fmt.Sprintf("%s (%s elements, %s)", res.ReshapedRHS, humanize.Comma(int64(elems)), humanize.Bytes(bytes)))
	}
	t.Row("texture export", strconv.FormatBool(res.TextureExport))
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderNEON(w io.Writer, f device.CPUFeatures, m neon.Method, b neon.BlockConfig) error {
	t := newTable(nil, "field", "value")
	t.Row("cpu", fmt.Sprintf("asimd=%t fp16=%t dotprod=%t sve=%t", f.ASIMD, f.FP16, f.DotProd, f.SVE))
	t.Row("method", m.Name)
	t.Row("out block", fmt.Sprintf("%dx%d k_unroll=%d", m.OutWidth, m.OutHeight, m.KUnroll))
	t.Row("tiles", fmt.Sprintf("m=%d n=%d k=%d", b.TileM, b.TileN, b.TileK))
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderSummary(w io.Writer, s device.Summary, host device.CPUFeatures) error {
	t := newTable(nil, "query", "value")
	t.Row("name", s.Name)
	t.Row("target", s.Target)
	t.Row("arch", s.Arch)
	t.Row("opencl", s.Version)
	t.Row("compute units", humanize.Comma(int64(s.ComputeUnits)))
	t.Row("fp16", strconv.FormatBool(s.FP16))
	t.Row("dot product", strconv.FormatBool(s.DotProduct))
	t.Row("dot product accumulate", strconv.FormatBool(s.DotProductAccumulate))
	t.Row("non-uniform workgroups", strconv.FormatBool(s.NonUniformWorkgroup))
	t.Row("image2d from buffer", strconv.FormatBool(s.TextureFromBuffer))
	t.Row("matrix multiply", strconv.FormatBool(s.MatrixMultiplyExtension))
	t.Row("pitch alignment", humanize.Comma(int64(s.PitchAlignment))+" px")
	t.Row("max image", fmt.Sprintf("%s x %s px", humanize.Comma(int64(s.MaxTextureWidth)), humanize.Comma(int64(s.MaxTextureHeight))))
	t.Row("host cpu", fmt.Sprintf("asimd=%t fp16=%t dotprod=%t sve=%t", host.ASIMD, host.FP16, host.DotProd, host.SVE))
	if _, err := fmt.Fprintln(w, titleStyle.Render(s.Name)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
