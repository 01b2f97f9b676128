package scanner

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/semafor/pkg/config"
	"github.com/c9s/semafor/pkg/datatype/floats"
	"github.com/c9s/semafor/pkg/indicator"
	"github.com/c9s/semafor/pkg/pattern"
	"github.com/c9s/semafor/pkg/types"
)

func sineSeries(n int) types.PriceSeries {
	s := types.PriceSeries{
		Highs: make(floats.Slice, n),
		Lows:  make(floats.Slice, n),
	}
	for i := 0; i < n; i++ {
		x := float64(i)
		mid := 100 + 10*math.Sin(x/17) + 4*math.Sin(x/5) + 1.5*math.Cos(x/2.3)
		s.Highs[i] = mid + 0.5
		s.Lows[i] = mid - 0.5
	}
	return s
}

func testOptions() Options {
	return Options{
		Periods:     []int{55, 34, 21, 8, 3},
		Deviation:   1,
		Backstep:    1,
		BigLevel:    3,
		SmallLevel:  5,
		MaxDistance: 10,
		MaxBars:     400,
	}
}

func TestScanner_Scan(t *testing.T) {
	series := sineSeries(500)
	opts := testOptions()

	result, err := New(opts).Scan(context.Background(), series)
	require.NoError(t, err)
	require.Len(t, result.Levels, 5)

	levels, err := indicator.Semafor(series.Highs, series.Lows, opts.Periods, indicator.SemaforOptions{Deviation: 1, Backstep: 1})
	require.NoError(t, err)
	assert.Equal(t, levels, result.Levels)

	expected, err := pattern.ScanTriangles(levels, pattern.TriangleOptions{AnchorLevel: 3, ConfirmLevel: 5, MaxDistance: 10, MaxBars: 400})
	require.NoError(t, err)
	assert.Equal(t, expected, result.Triangles)

	t.Run("parallel", func(t *testing.T) {
		o := opts
		o.Parallel = true
		parallel, err := New(o).Scan(context.Background(), series)
		require.NoError(t, err)
		assert.Equal(t, result.Levels, parallel.Levels)
		assert.Equal(t, result.Triangles, parallel.Triangles)
	})

	t.Run("zero max bars scans the whole series", func(t *testing.T) {
		o := opts
		o.MaxBars = 0
		all, err := New(o).Scan(context.Background(), series)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all.Triangles), len(result.Triangles))
	})
}

func TestScanner_ScanErrors(t *testing.T) {
	series := sineSeries(100)

	t.Run("not enough periods", func(t *testing.T) {
		o := testOptions()
		o.SmallLevel = 8
		_, err := New(o).Scan(context.Background(), series)
		assert.ErrorIs(t, err, config.ErrNotEnoughPeriods)
	})

	t.Run("series mismatch", func(t *testing.T) {
		s := series
		s.Lows = s.Lows[1:]
		_, err := New(testOptions()).Scan(context.Background(), s)
		assert.ErrorIs(t, err, types.ErrConfiguration)
	})

	t.Run("invalid period", func(t *testing.T) {
		o := testOptions()
		o.Periods = []int{55, 34, 0, 8, 3}
		_, err := New(o).Scan(context.Background(), series)
		assert.ErrorIs(t, err, indicator.ErrInvalidDepth)
	})
}

func TestLoadSeries(t *testing.T) {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	var sb strings.Builder
	sb.WriteString("time,open,high,low,close\n")
	for i := 0; i < 10; i++ {
		tm := base.Add(time.Duration(i) * 15 * time.Minute)
		p := 100 + float64(i)
		fmt.Fprintf(&sb, "%s,%g,%g,%g,%g\n", tm.Format("2006-01-02 15:04:05"), p, p+1, p-1, p)
	}

	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))

	c := config.Default()
	c.CSVPath = path
	c.Bars = 4

	series, err := LoadSeries(c)
	require.NoError(t, err)
	require.Equal(t, 10, series.Len(), "bars does not truncate the file")

	// newest first
	assert.Equal(t, 110.0, series.Highs[0])
	assert.Equal(t, 101.0, series.Highs[9])
	assert.Equal(t, base.Add(9*15*time.Minute), series.Times[0])

	c.EndDate = "2024-01-02 00:30"
	series, err = LoadSeries(c)
	require.NoError(t, err)
	assert.Equal(t, 3, series.Len())

	c.Source = "mt5"
	_, err = LoadSeries(c)
	assert.Error(t, err)
}
