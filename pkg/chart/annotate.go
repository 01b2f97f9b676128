package chart

import (
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/semafor/pkg/types"
)

type AnnotateFunc func(chart.Renderer, chart.Box, chart.Range, chart.Range, chart.Style)

var _ chart.Series = &TriangleSeries{}

// TriangleSeries draws the 1-2-3 triangles of one side with their point labels
type TriangleSeries struct {
	Name string
	Side types.SideType

	series    types.PriceSeries
	triangles []types.Triangle
}

func NewTriangleSeries(name string, side types.SideType, series types.PriceSeries, triangles []types.Triangle) *TriangleSeries {
	var filtered []types.Triangle
	for _, tr := range triangles {
		if tr.Side == side {
			filtered = append(filtered, tr)
		}
	}

	return &TriangleSeries{
		Name:      name,
		Side:      side,
		series:    series,
		triangles: filtered,
	}
}

// Implement chart.Series interface for TriangleSeries.
func (ts *TriangleSeries) GetName() string {
	return ts.Name
}

func (ts *TriangleSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeColor: colorFromHex(ts.Side.Color()),
		StrokeWidth: 2.0,
	}
}

func (ts *TriangleSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (ts *TriangleSeries) Validate() error {
	return nil
}

func (ts *TriangleSeries) Len() int {
	return len(ts.triangles)
}

func (ts *TriangleSeries) Render(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, style chart.Style) {
	ts.annotate()(r, b, xRange, yRange, style)
}

func (ts *TriangleSeries) annotate() AnnotateFunc {
	return func(r chart.Renderer, b chart.Box, xRange, yRange chart.Range, defaults chart.Style) {
		style := ts.GetStyle()
		translate := func(bar int, price float64) (int, int) {
			x := b.Left + xRange.Translate(float64(ts.series.PlotIndex(bar)))
			y := b.Bottom - yRange.Translate(price)
			return x, y
		}

		for _, tr := range ts.triangles {
			x1, y1 := translate(tr.Bar1, tr.Price1)
			x2, y2 := translate(tr.Bar2, tr.Price2)
			x3, y3 := translate(tr.Bar3, tr.Price3)

			r.SetStrokeColor(style.StrokeColor)
			r.SetStrokeWidth(style.StrokeWidth)
			r.MoveTo(x1, y1)
			r.LineTo(x2, y2)
			r.LineTo(x3, y3)
			r.LineTo(x1, y1)
			r.Stroke()

			r.SetFont(defaults.GetFont())
			r.SetFontColor(style.StrokeColor)
			r.SetFontSize(10)
			r.Text("1", x1+3, y1-3)
			r.Text("2", x2+3, y2-3)
			r.Text("3", x3+3, y3-3)
		}
	}
}
