package charts

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"
)

// Format selects the image format charts are rendered to.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

const (
	chartWidth  = 1280
	chartHeight = 520
	maxXTicks   = 16
)

var ErrNoSeries = errors.New("chart spec has no series")

// Rendered is one finished chart image, ready for report embedding.
type Rendered struct {
	Name   string
	Format Format
	Data   []byte
}

// renderers is the dispatch table from spec kind to render strategy.
var renderers = map[Kind]func(Spec, Format) ([]byte, error){
	Line:        renderLine,
	StackedArea: renderStackedArea,
}

// Render draws a single spec into an image.
func Render(spec Spec, format Format) ([]byte, error) {
	if len(spec.Series) == 0 {
		return nil, ErrNoSeries
	}
	render, ok := renderers[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown chart kind %d", spec.Kind)
	}
	return render(spec, format)
}

// RenderAll renders every chart concurrently. Charts are independent of
// each other, so this is a plain fan-out; results are slotted by index to
// keep the report order deterministic.
func RenderAll(ctx context.Context, cs []Chart, format Format) ([]Rendered, error) {
	rendered := make([]Rendered, len(cs))
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range cs {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := Render(c.Spec, format)
			if err != nil {
				return fmt.Errorf("render %q: %w", c.Name, err)
			}
			rendered[i] = Rendered{Name: c.Name, Format: format, Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rendered, nil
}

func provider(format Format) chart.RendererProvider {
	if format == PNG {
		return chart.PNG
	}
	return chart.SVG
}

func renderLine(spec Spec, format Format) ([]byte, error) {
	graph := baseChart(spec)

	colorIdx := -1
	for _, s := range spec.Series {
		style := chart.Style{StrokeWidth: 2}
		if s.Trend {
			// A trend line borrows the color of the series before it.
			style.StrokeColor = seriesColor(colorIdx).WithAlpha(100)
			style.StrokeDashArray = []float64{5.0, 5.0}
		} else {
			colorIdx++
			style.StrokeColor = seriesColor(colorIdx)
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xValues(len(spec.XLabels)),
			YValues: padSingle(s.Values),
			Style:   style,
		})
	}
	appendBaselines(&graph, spec)
	guardFlatRange(&graph)

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(provider(format), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderStackedArea draws the series as cumulative filled areas. The
// series are summed bottom-up and drawn from the total downwards, so each
// band that stays visible is exactly one series' contribution.
func renderStackedArea(spec Spec, format Format) ([]byte, error) {
	graph := baseChart(spec)

	points := len(spec.XLabels)
	cumulative := make([][]float64, len(spec.Series))
	running := make([]float64, points)
	for i, s := range spec.Series {
		row := make([]float64, points)
		for j := 0; j < points && j < len(s.Values); j++ {
			running[j] += s.Values[j]
			row[j] = running[j]
		}
		cumulative[i] = row
	}

	// Tallest stack first so the smaller ones paint over it.
	for i := len(spec.Series) - 1; i >= 0; i-- {
		color := seriesColor(i)
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    spec.Series[i].Name,
			XValues: xValues(points),
			YValues: padSingle(cumulative[i]),
			Style: chart.Style{
				StrokeWidth: 1.5,
				StrokeColor: color,
				FillColor:   color.WithAlpha(190),
			},
		})
	}
	appendBaselines(&graph, spec)
	guardFlatRange(&graph)

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(provider(format), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// guardFlatRange widens the y-range when every value is identical, so
// tick generation always has a span to work with.
func guardFlatRange(graph *chart.Chart) {
	var vmin, vmax float64
	first := true
	for _, s := range graph.Series {
		cs, ok := s.(chart.ContinuousSeries)
		if !ok {
			continue
		}
		for _, v := range cs.YValues {
			if first {
				vmin, vmax = v, v
				first = false
				continue
			}
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
		}
	}
	if !first && vmin == vmax {
		graph.YAxis.Range = &chart.ContinuousRange{Min: vmin - 1, Max: vmax + 1}
	}
}

func baseChart(spec Spec) chart.Chart {
	return chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding:   chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Ticks: xTicks(spec.XLabels),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				return fmt.Sprintf("%.0f%s", f, spec.YSuffix)
			},
		},
	}
}

func appendBaselines(graph *chart.Chart, spec Spec) {
	for _, b := range spec.Baselines {
		style := chart.Style{StrokeWidth: 1.5, StrokeColor: chart.ColorAlternateGray}
		if b.Dashed {
			style.StrokeDashArray = []float64{4.0, 4.0}
			style.StrokeColor = chart.ColorYellow
		}
		values := make([]float64, len(spec.XLabels))
		for i := range values {
			values[i] = b.Value
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    b.Name,
			XValues: xValues(len(spec.XLabels)),
			YValues: padSingle(values),
			Style:   style,
		})
	}
}

// xValues indexes the labels: series plot against 0..n-1 and the ticks
// carry the period labels.
func xValues(n int) []float64 {
	if n == 1 {
		n = 2
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// padSingle doubles a single point: go-chart needs at least two points
// per series, and a one-month dataset is valid input.
func padSingle(values []float64) []float64 {
	if len(values) == 1 {
		return []float64{values[0], values[0]}
	}
	return values
}

// xTicks thins the axis labels so long timelines stay readable.
func xTicks(labels []string) []chart.Tick {
	step := 1
	if len(labels) > maxXTicks {
		step = (len(labels) + maxXTicks - 1) / maxXTicks
	}
	var ticks []chart.Tick
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: labels[i]})
	}
	if len(labels) == 1 {
		ticks = append(ticks, chart.Tick{Value: 1, Label: labels[0]})
	}
	return ticks
}

func seriesColor(index int) drawing.Color {
	if index < 0 {
		index = 0
	}
	return chart.GetDefaultColor(index)
}
