package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/semafor/pkg/datatype/floats"
	"github.com/c9s/semafor/pkg/types"
)

var testTriangles = []types.Triangle{
	{Side: types.SideTypeSell, Bar1: 9, Price1: 50, Bar2: 8, Price2: 46, Bar3: 8, Price3: 49},
	{Side: types.SideTypeBuy, Bar1: 4, Price1: 100, Bar2: 3, Price2: 105, Bar3: 3, Price3: 102.5},
}

func TestPrintTriangles(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintTriangles(&buf, testTriangles, Options{Format: FormatText}))
		assert.Equal(t, "SELL 1(9,50) 2(8,46) 3(8,49)\nBUY 1(4,100) 2(3,105) 3(3,102.5)\n", buf.String())
	})

	t.Run("text without triangles", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintTriangles(&buf, nil, Options{}))
		assert.Equal(t, "no triangles found\n", buf.String())
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintTriangles(&buf, testTriangles, Options{Format: FormatCSV}))
		assert.Equal(t, "side,bar1,price1,bar2,price2,bar3,price3\n"+
			"sell,9,50,8,46,8,49\n"+
			"buy,4,100,3,105,3,102.5\n", buf.String())
	})

	t.Run("table", func(t *testing.T) {
		base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		series := types.PriceSeries{Highs: floats.Zeros(10), Lows: floats.Zeros(10), Times: make([]time.Time, 10)}
		for i := range series.Times {
			series.Times[i] = base.Add(-time.Duration(i) * time.Hour)
		}

		var buf bytes.Buffer
		require.NoError(t, PrintTriangles(&buf, testTriangles, Options{Format: FormatTable, Series: &series}))
		out := buf.String()
		assert.Contains(t, out, "SELL")
		assert.Contains(t, out, "102.5")
		assert.Contains(t, out, "2 triangles")
		assert.Contains(t, out, "2024-01-01 15:00")
		assert.Equal(t, 1, strings.Count(out, "BUY"))
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, PrintTriangles(&buf, testTriangles, Options{Format: "html"}))
	})
}

func TestPrintLevels(t *testing.T) {
	levels := types.Levels{
		{Index: 1, Depth: 8, Buffer: types.PivotBuffer{Low: floats.New(0, 0, 3, 0), High: floats.New(0, 9, 0, 0)}},
		{Index: 2, Depth: 3, Buffer: types.PivotBuffer{Low: floats.New(0, 0, 3, 0), High: floats.Zeros(4)}},
		{Index: 3, Depth: 2, Buffer: types.NewPivotBuffer(4)},
	}

	var buf bytes.Buffer
	PrintLevels(&buf, levels, false)
	out := buf.String()
	assert.Contains(t, out, "high @1")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "low @2")
}
