package types

import (
	"fmt"
	"time"

	"github.com/c9s/semafor/pkg/datatype/floats"
)

// PriceSeries holds the bars in the newest-first order: index 0 is the most recent
// (still forming) bar, increasing index goes further into the past.
//
// Highs and Lows are required. Closes and Times are optional and are only used by the
// presentation layer.
type PriceSeries struct {
	Highs  floats.Slice
	Lows   floats.Slice
	Closes floats.Slice
	Times  []time.Time
}

// NewPriceSeriesFromKLines converts klines in the file order (oldest first) into the
// newest-first series.
func NewPriceSeriesFromKLines(klines []KLine) PriceSeries {
	n := len(klines)
	s := PriceSeries{
		Highs:  make(floats.Slice, n),
		Lows:   make(floats.Slice, n),
		Closes: make(floats.Slice, n),
		Times:  make([]time.Time, n),
	}

	for i, k := range klines {
		j := n - 1 - i
		s.Highs[j] = k.High
		s.Lows[j] = k.Low
		s.Closes[j] = k.Close
		s.Times[j] = k.StartTime
	}

	return s
}

func (s PriceSeries) Len() int {
	return len(s.Highs)
}

// Validate checks the column lengths
func (s PriceSeries) Validate() error {
	n := len(s.Highs)
	if len(s.Lows) != n {
		return fmt.Errorf("%w: highs and lows length mismatch: %d != %d", ErrConfiguration, n, len(s.Lows))
	}

	if len(s.Closes) > 0 && len(s.Closes) != n {
		return fmt.Errorf("%w: closes length mismatch: %d != %d", ErrConfiguration, len(s.Closes), n)
	}

	if len(s.Times) > 0 && len(s.Times) != n {
		return fmt.Errorf("%w: times length mismatch: %d != %d", ErrConfiguration, len(s.Times), n)
	}

	return nil
}

// PlotIndex reflects the newest-first bar index into the oldest-first plotting index
func (s PriceSeries) PlotIndex(bar int) int {
	return s.Len() - 1 - bar
}
