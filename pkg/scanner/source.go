package scanner

import (
	"github.com/pkg/errors"

	"github.com/c9s/semafor/pkg/config"
	"github.com/c9s/semafor/pkg/datasource/csvsource"
	"github.com/c9s/semafor/pkg/types"
)

// LoadSeries reads the configured csv source and returns the bars in the newest-first order.
// The whole file is kept, Bars only caps the triangle scan.
func LoadSeries(c *config.Config) (types.PriceSeries, error) {
	if c.Source != config.SourceCSV {
		return types.PriceSeries{}, errors.Errorf("unsupported data source: %q", c.Source)
	}

	tf, err := types.ParseTimeframe(string(c.Timeframe))
	if err != nil {
		return types.PriceSeries{}, err
	}

	klines, err := csvsource.ReadKLinesFromCSVWithFormat(c.CSVPath, tf.Duration(), c.CSVFormat)
	if err != nil {
		return types.PriceSeries{}, errors.Wrapf(err, "can not read klines from %s", c.CSVPath)
	}

	start, end, err := c.TimeRange()
	if err != nil {
		return types.PriceSeries{}, err
	}

	total := len(klines)
	klines = csvsource.FilterByTime(klines, start, end)
	log.Infof("loaded %d of %d bars from %s", len(klines), total, c.CSVPath)
	return types.NewPriceSeriesFromKLines(klines), nil
}
