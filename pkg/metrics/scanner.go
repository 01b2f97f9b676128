package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/semafor/pkg/types"
)

var LevelPivotMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "semafor_level_pivots",
		Help: "number of pivots of a level",
	}, []string{"level", "depth", "type"})

var TriangleCountMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "semafor_triangles_total",
		Help: "number of 1-2-3 triangles found",
	}, []string{"side"})

var ScanDurationMetrics = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "semafor_scan_duration_seconds",
		Help:    "time spent on computing the levels and scanning the triangles",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

func init() {
	prometheus.MustRegister(LevelPivotMetrics, TriangleCountMetrics, ScanDurationMetrics)
}

func UpdateLevelMetrics(levels types.Levels) {
	for _, level := range levels {
		index, depth := strconv.Itoa(level.Index), strconv.Itoa(level.Depth)
		LevelPivotMetrics.WithLabelValues(index, depth, "low").Set(float64(level.Buffer.LowCount()))
		LevelPivotMetrics.WithLabelValues(index, depth, "high").Set(float64(level.Buffer.HighCount()))
	}
}

func UpdateTriangleMetrics(triangles []types.Triangle, elapsed time.Duration) {
	for _, tr := range triangles {
		TriangleCountMetrics.WithLabelValues(tr.Side.Lower()).Inc()
	}

	ScanDurationMetrics.Observe(elapsed.Seconds())
}

// WriteTextfile dumps the default registry in the text format for the node exporter
// textfile collector
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
