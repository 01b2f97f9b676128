package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/c9s/semafor/pkg/config"
	"github.com/c9s/semafor/pkg/indicator"
	"github.com/c9s/semafor/pkg/metrics"
	"github.com/c9s/semafor/pkg/pattern"
	"github.com/c9s/semafor/pkg/types"
)

var log = logrus.WithField("component", "scanner")

type Options struct {
	Periods   []int
	Deviation float64
	Backstep  int

	BigLevel    int
	SmallLevel  int
	MaxDistance float64

	// MaxBars caps the oldest anchor bar, zero scans the whole series
	MaxBars int

	Parallel bool
}

func OptionsFromConfig(c *config.Config) Options {
	return Options{
		Periods:     c.Periods,
		Deviation:   c.Deviation,
		Backstep:    c.Backstep,
		BigLevel:    c.BigLevel,
		SmallLevel:  c.SmallLevel,
		MaxDistance: c.MaxDistance,
		MaxBars:     c.Bars,
		Parallel:    c.Parallel,
	}
}

type Result struct {
	Series    types.PriceSeries
	Levels    types.Levels
	Triangles []types.Triangle
}

type Scanner struct {
	opts Options
}

func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Levels computes the semafor levels of the series
func (s *Scanner) Levels(ctx context.Context, series types.PriceSeries) (types.Levels, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	semaforOpts := indicator.SemaforOptions{Deviation: s.opts.Deviation, Backstep: s.opts.Backstep}

	startTime := time.Now()
	var levels types.Levels
	var err error
	if s.opts.Parallel {
		levels, err = indicator.SemaforParallel(ctx, series.Highs, series.Lows, s.opts.Periods, semaforOpts)
	} else {
		levels, err = indicator.Semafor(series.Highs, series.Lows, s.opts.Periods, semaforOpts)
	}
	if err != nil {
		return nil, err
	}

	for _, level := range levels {
		log.Debugf("level %d (depth %d): %d lows, %d highs",
			level.Index, level.Depth, level.Buffer.LowCount(), level.Buffer.HighCount())
	}

	metrics.UpdateLevelMetrics(levels)
	log.Debugf("computed %d levels over %d bars in %s", len(levels), series.Len(), time.Since(startTime))
	return levels, nil
}

// Scan computes the levels and scans the 1-2-3 triangles anchored on the big level
// and confirmed on the small level.
func (s *Scanner) Scan(ctx context.Context, series types.PriceSeries) (*Result, error) {
	maxLevel := s.opts.BigLevel
	if s.opts.SmallLevel > maxLevel {
		maxLevel = s.opts.SmallLevel
	}
	if maxLevel > len(s.opts.Periods) {
		return nil, fmt.Errorf("%w: level %d needs %d periods, got %d", config.ErrNotEnoughPeriods, maxLevel, maxLevel, len(s.opts.Periods))
	}

	startTime := time.Now()
	levels, err := s.Levels(ctx, series)
	if err != nil {
		return nil, err
	}

	maxBars := s.opts.MaxBars
	if maxBars <= 0 {
		maxBars = series.Len()
	}

	triangles, err := pattern.ScanTriangles(levels, pattern.TriangleOptions{
		AnchorLevel:  s.opts.BigLevel,
		ConfirmLevel: s.opts.SmallLevel,
		MaxDistance:  s.opts.MaxDistance,
		MaxBars:      maxBars,
	})
	if err != nil {
		return nil, err
	}

	metrics.UpdateTriangleMetrics(triangles, time.Since(startTime))
	log.Infof("found %d triangles on level %d/%d over %d bars", len(triangles), s.opts.BigLevel, s.opts.SmallLevel, series.Len())

	return &Result{
		Series:    series,
		Levels:    levels,
		Triangles: triangles,
	}, nil
}
