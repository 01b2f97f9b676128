package chart

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/semafor/pkg/datatype/floats"
)

type Canvas struct {
	chart.Chart
}

// NewCanvas creates a chart with the bar index on the x axis and the legend on the left
func NewCanvas(title string, width, height int) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title:  title,
			Width:  width,
			Height: height,
			XAxis: chart.XAxis{
				ValueFormatter: chart.IntValueFormatter,
			},
			YAxis: chart.YAxis{
				ValueFormatter: chart.FloatValueFormatter,
			},
		},
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// PlotRaw plots a newest-first slice as a line over the oldest-first plot index
func (canvas *Canvas) PlotRaw(tag string, a floats.Slice, style chart.Style) {
	length := a.Length()
	if length == 0 {
		return
	}

	x := make([]float64, length)
	for i := range x {
		x[i] = float64(i)
	}

	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    tag,
		Style:   style,
		XValues: x,
		YValues: a.Reverse(),
	})
}

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
