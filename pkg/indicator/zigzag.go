package indicator

import (
	"fmt"

	"github.com/c9s/semafor/pkg/datatype/floats"
	"github.com/c9s/semafor/pkg/types"
)

var (
	ErrLengthMismatch = fmt.Errorf("%w: highs and lows length mismatch", types.ErrConfiguration)
	ErrInvalidDepth   = fmt.Errorf("%w: depth must be >= 1", types.ErrConfiguration)
)

// unset marks an empty tracker slot, valid prices are positive.
const unset = -1.0

type ZigZagOptions struct {
	// Depth is the window width used to decide whether a bar is an extreme
	Depth int `json:"depth"`

	// Deviation is the maximum gap between the bar's own price and the window extreme
	Deviation float64 `json:"deviation"`

	// Backstep is the number of newer bars whose weaker pivot gets erased
	Backstep int `json:"backstep"`
}

// ZigZag computes the low and high pivot buffers of the CountZZ algorithm over a
// newest-first series (index 0 is the current bar).
//
// When depth >= len(highs) no bar can be confirmed and both buffers are all zero.
func ZigZag(highs, lows []float64, opts ZigZagOptions) (types.PivotBuffer, error) {
	if len(highs) != len(lows) {
		return types.PivotBuffer{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(highs), len(lows))
	}

	if opts.Depth < 1 {
		return types.PivotBuffer{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, opts.Depth)
	}

	n := len(highs)
	buf := types.NewPivotBuffer(n)
	if opts.Depth >= n {
		return buf, nil
	}

	backstep := opts.Backstep
	if backstep < 0 {
		backstep = 0
	}

	limit := ZigZagLimit(n, opts.Depth)

	findCandidates(highs, lows, buf, limit, opts.Depth, opts.Deviation, backstep)
	resolveConflicts(buf, limit)

	// the boundary bar has no further look-back to confirm a low
	buf.Low[limit] = 0.0
	return buf, nil
}

// ZigZagLimit returns the oldest bar index the zigzag scan starts from
func ZigZagLimit(n, depth int) int {
	limit := n - depth
	if n-1 < limit {
		limit = n - 1
	}
	if limit < 0 {
		limit = 0
	}
	return limit
}

func findCandidates(highs, lows floats.Slice, buf types.PivotBuffer, limit, depth int, deviation float64, backstep int) {
	n := len(highs)
	lastLow, lastHigh := unset, unset

	for shift := limit; shift >= 0; shift-- {
		val := lows.Window(shift, depth).Min()
		if val == lastLow {
			val = 0.0
		} else {
			lastLow = val
			if lows[shift]-val > deviation {
				val = 0.0
			} else {
				for back := 1; back <= backstep && shift+back < n; back++ {
					if res := buf.Low[shift+back]; res != 0.0 && res > val {
						buf.Low[shift+back] = 0.0
					}
				}
			}
		}
		buf.Low[shift] = val

		val = highs.Window(shift, depth).Max()
		if val == lastHigh {
			val = 0.0
		} else {
			lastHigh = val
			if val-highs[shift] > deviation {
				val = 0.0
			} else {
				for back := 1; back <= backstep && shift+back < n; back++ {
					if res := buf.High[shift+back]; res != 0.0 && res < val {
						buf.High[shift+back] = 0.0
					}
				}
			}
		}
		buf.High[shift] = val
	}
}

// extremeTracker remembers the last accepted high and low while the candidates are cut.
// Seeing one type of pivot resets the tracker of the other type.
type extremeTracker struct {
	lastHigh, lastLow       float64
	lastHighPos, lastLowPos int
}

func newExtremeTracker() *extremeTracker {
	t := &extremeTracker{}
	t.resetHigh()
	t.resetLow()
	return t
}

func (t *extremeTracker) resetHigh() {
	t.lastHigh, t.lastHighPos = unset, -1
}

func (t *extremeTracker) resetLow() {
	t.lastLow, t.lastLowPos = unset, -1
}

// high keeps the higher of two consecutive highs, on a tie the older one survives.
func (t *extremeTracker) high(buf types.PivotBuffer, shift int, cur float64) {
	if t.lastHigh > 0 {
		if t.lastHigh < cur {
			buf.High[t.lastHighPos] = 0.0
		} else {
			buf.High[shift] = 0.0
		}
	}

	if t.lastHigh < cur || t.lastHigh < 0 {
		t.lastHigh, t.lastHighPos = cur, shift
	}

	t.resetLow()
}

// low keeps the lower of two consecutive lows, on a tie the older one survives.
func (t *extremeTracker) low(buf types.PivotBuffer, shift int, cur float64) {
	if t.lastLow > 0 {
		if t.lastLow > cur {
			buf.Low[t.lastLowPos] = 0.0
		} else {
			buf.Low[shift] = 0.0
		}
	}

	if cur < t.lastLow || t.lastLow < 0 {
		t.lastLow, t.lastLowPos = cur, shift
	}

	t.resetHigh()
}

func resolveConflicts(buf types.PivotBuffer, limit int) {
	tracker := newExtremeTracker()
	for shift := limit; shift >= 0; shift-- {
		curLow, curHigh := buf.Low[shift], buf.High[shift]
		if curLow == 0.0 && curHigh == 0.0 {
			continue
		}

		// a bar carrying both pivots runs both rules and resets both trackers
		if curHigh != 0.0 {
			tracker.high(buf, shift, curHigh)
		}

		if curLow != 0.0 {
			tracker.low(buf, shift, curLow)
		}
	}
}
