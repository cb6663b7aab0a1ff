// Package chart renders time series as standalone SVG markup. Pure Go, no
// drawing dependency; the markup embeds directly into the graphs page and is
// also served raw for API clients.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"aquaview.xyz/water-quality-service/pkg/common"
	"aquaview.xyz/water-quality-service/pkg/dashboard"
)

// Config controls the rendered geometry. The zero value is unusable; start
// from DefaultConfig.
type Config struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
}

func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       420,
		MarginTop:    40,
		MarginRight:  24,
		MarginBottom: 48,
		MarginLeft:   56,
	}
}

// RenderSVG draws one polyline per series over a shared date axis. With no
// series or no dates it still draws the frame and axes, so an empty
// selection or an empty dataset renders as a blank plot rather than an
// error.
func RenderSVG(data *dashboard.ChartData, cfg Config) string {
	plotW := float64(cfg.Width - cfg.MarginLeft - cfg.MarginRight)
	plotH := float64(cfg.Height - cfg.MarginTop - cfg.MarginBottom)
	left := float64(cfg.MarginLeft)
	top := float64(cfg.MarginTop)
	bottom := top + plotH
	right := left + plotW

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`,
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`, cfg.Width, cfg.Height)
	b.WriteString("\n")

	lo, hi := valueBounds(data.Series)

	// Horizontal gridlines with value labels, five steps from bottom to top.
	for k := 0; k <= 4; k++ {
		v := lo + (hi-lo)*float64(k)/4
		y := bottom - plotH*float64(k)/4
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e5e5e5" stroke-width="1"/>`,
			left, y, right, y)
		b.WriteString("\n")
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" fill="#555" text-anchor="end">%s</text>`,
			left-6, y+4, tickLabel(v))
		b.WriteString("\n")
	}

	// Date labels, thinned so long datasets stay readable.
	n := len(data.Dates)
	step := 1
	if n > 6 {
		step = (n + 5) / 6
	}
	for i := 0; i < n; i += step {
		x := xPos(i, n, left, plotW)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="11" fill="#555" text-anchor="middle">%s</text>`,
			x, bottom+18, escape(data.Dates[i]))
		b.WriteString("\n")
	}

	// Axes.
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1"/>`,
		left, top, left, bottom)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="1"/>`,
		left, bottom, right, bottom)
	b.WriteString("\n")

	for _, series := range data.Series {
		if len(series.Points) == 0 {
			continue
		}
		color := SeriesColor(series.Hue)
		var points strings.Builder
		for i, p := range series.Points {
			if i > 0 {
				points.WriteString(" ")
			}
			x := xPos(i, len(series.Points), left, plotW)
			y := bottom - plotH*(p.Value-lo)/(hi-lo)
			fmt.Fprintf(&points, "%.1f,%.1f", x, y)
		}
		fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="2" points="%s"/>`,
			color, points.String())
		b.WriteString("\n")
	}

	// Legend across the top margin.
	legendX := left
	for _, series := range data.Series {
		color := SeriesColor(series.Hue)
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="10" height="10" fill="%s"/>`,
			legendX, top-26, color)
		b.WriteString("\n")
		label := series.Label
		if series.Unit != "" {
			label = fmt.Sprintf("%s (%s)", series.Label, series.Unit)
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="12" fill="#333">%s</text>`,
			legendX+14, top-17, escape(label))
		b.WriteString("\n")
		legendX += 14 + 7*float64(len(label)) + 18
	}

	b.WriteString("</svg>")
	return b.String()
}

// SeriesColor maps a hue angle to the stroke color used for that series.
func SeriesColor(hue int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 45%%)", hue)
}

// valueBounds finds the padded value range across every point of every
// series. Degenerate ranges widen so flat lines draw mid-plot.
func valueBounds(series []dashboard.ChartSeries) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, s := range series {
		lo = common.Reducer(s.Points, func(acc float64, p dashboard.ChartPoint) float64 {
			return math.Min(acc, p.Value)
		}, lo)
		hi = common.Reducer(s.Points, func(acc float64, p dashboard.ChartPoint) float64 {
			return math.Max(acc, p.Value)
		}, hi)
	}
	if math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		return 0, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func xPos(i, n int, left, plotW float64) float64 {
	if n <= 1 {
		return left + plotW/2
	}
	return left + plotW*float64(i)/float64(n-1)
}

func tickLabel(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
