package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/semafor/pkg/types"
)

const DefaultOutPath = "triangles.png"

var priceColor = drawing.Color{R: 150, G: 150, B: 150, A: 120}

type Options struct {
	Title  string
	Width  int
	Height int
}

// Title names the chart after the symbol, or "CSV" when the symbol is unknown
func Title(symbol string, timeframe types.Timeframe) string {
	if symbol == "" {
		symbol = "CSV"
	}
	return fmt.Sprintf("%s %s 1-2-3 Triangles", symbol, timeframe)
}

// RenderTriangles writes a PNG with the price lines and the triangles on top.
// Bars are drawn oldest on the left.
func RenderTriangles(w io.Writer, series types.PriceSeries, triangles []types.Triangle, opts Options) error {
	if series.Len() < 2 {
		return errors.Errorf("can not plot %d bars, at least 2 are required", series.Len())
	}

	if opts.Width == 0 {
		opts.Width = 1600
	}
	if opts.Height == 0 {
		opts.Height = 800
	}

	canvas := NewCanvas(opts.Title, opts.Width, opts.Height)
	canvas.PlotRaw("high", series.Highs, chart.Style{StrokeColor: priceColor, StrokeWidth: 1})
	canvas.PlotRaw("low", series.Lows, chart.Style{StrokeColor: priceColor, StrokeWidth: 1})
	if series.Closes.Length() == series.Len() {
		canvas.PlotRaw("close", series.Closes, chart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 1})
	}

	canvas.Series = append(canvas.Series,
		NewTriangleSeries("buy", types.SideTypeBuy, series, triangles),
		NewTriangleSeries("sell", types.SideTypeSell, series, triangles),
	)

	return errors.Wrap(canvas.Render(chart.PNG, w), "can not render chart")
}

// RenderTrianglesToFile renders the chart into the png file at path
func RenderTrianglesToFile(path string, series types.PriceSeries, triangles []types.Triangle, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can not create %s", path)
	}

	if err := RenderTriangles(f, series, triangles, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
