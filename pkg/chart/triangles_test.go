package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/semafor/pkg/datatype/floats"
	"github.com/c9s/semafor/pkg/types"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func testSeries(n int) types.PriceSeries {
	s := types.PriceSeries{
		Highs:  make(floats.Slice, n),
		Lows:   make(floats.Slice, n),
		Closes: make(floats.Slice, n),
	}
	for i := 0; i < n; i++ {
		mid := 100 + 5*math.Sin(float64(i)/4)
		s.Highs[i] = mid + 1
		s.Lows[i] = mid - 1
		s.Closes[i] = mid
	}
	return s
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "EURUSD M15 1-2-3 Triangles", Title("EURUSD", types.TimeframeM15))
	assert.Equal(t, "CSV H1 1-2-3 Triangles", Title("", types.TimeframeH1))
}

func TestRenderTriangles(t *testing.T) {
	series := testSeries(60)
	triangles := []types.Triangle{
		{Side: types.SideTypeBuy, Bar1: 40, Price1: 96, Bar2: 35, Price2: 101, Bar3: 30, Price3: 98},
		{Side: types.SideTypeSell, Bar1: 20, Price1: 104, Bar2: 15, Price2: 99, Bar3: 10, Price3: 102},
	}

	var buf bytes.Buffer
	err := RenderTriangles(&buf, series, triangles, Options{Title: Title("EURUSD", types.TimeframeM15), Width: 800, Height: 400})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))

	t.Run("no triangles", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTriangles(&buf, series, nil, Options{}))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
	})

	t.Run("too few bars", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, RenderTriangles(&buf, testSeries(1), nil, Options{}))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultOutPath)
		require.NoError(t, RenderTrianglesToFile(path, series, triangles, Options{}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, pngSignature))
	})
}

func TestNewTriangleSeries(t *testing.T) {
	series := testSeries(10)
	triangles := []types.Triangle{
		{Side: types.SideTypeBuy, Bar1: 5, Price1: 96, Bar2: 4, Price2: 101, Bar3: 3, Price3: 98},
		{Side: types.SideTypeSell, Bar1: 5, Price1: 104, Bar2: 4, Price2: 99, Bar3: 3, Price3: 102},
		{Side: types.SideTypeBuy, Bar1: 3, Price1: 96, Bar2: 2, Price2: 101, Bar3: 1, Price3: 98},
	}

	buys := NewTriangleSeries("buy", types.SideTypeBuy, series, triangles)
	assert.Equal(t, 2, buys.Len())
	assert.Equal(t, "buy", buys.GetName())
	assert.NoError(t, buys.Validate())

	sells := NewTriangleSeries("sell", types.SideTypeSell, series, triangles)
	assert.Equal(t, 1, sells.Len())
	assert.NotEqual(t, buys.GetStyle().StrokeColor, sells.GetStyle().StrokeColor)
}
