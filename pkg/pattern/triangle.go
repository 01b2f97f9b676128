package pattern

import (
	"fmt"
	"math"

	"github.com/c9s/semafor/pkg/datatype/floats"
	"github.com/c9s/semafor/pkg/types"
)

var (
	ErrLevelNotFound  = fmt.Errorf("%w: level not found", types.ErrConfiguration)
	ErrBufferMismatch = fmt.Errorf("%w: anchor and confirm buffers length mismatch", types.ErrConfiguration)
)

type TriangleOptions struct {
	// AnchorLevel supplies point 1, usually the bigger depth
	AnchorLevel int `json:"anchorLevel"`

	// ConfirmLevel supplies point 2 and point 3
	ConfirmLevel int `json:"confirmLevel"`

	// MaxDistance is the exclusive limit of |price2 - price1|
	MaxDistance float64 `json:"maxDistance"`

	// MaxBars is the oldest anchor bar to scan
	MaxBars int `json:"maxBars"`
}

// ScanTriangles looks up the anchor and confirm levels and scans them for 1-2-3 triangles.
func ScanTriangles(levels types.Levels, opts TriangleOptions) ([]types.Triangle, error) {
	anchor, ok := levels.Get(opts.AnchorLevel)
	if !ok {
		return nil, fmt.Errorf("%w: anchor level %d", ErrLevelNotFound, opts.AnchorLevel)
	}

	confirm, ok := levels.Get(opts.ConfirmLevel)
	if !ok {
		return nil, fmt.Errorf("%w: confirm level %d", ErrLevelNotFound, opts.ConfirmLevel)
	}

	return ScanTrianglesWithBuffers(anchor.Buffer, confirm.Buffer, opts)
}

// ScanTrianglesWithBuffers scans the anchor bars from min(MaxBars, n-1) down to 1. The
// current bar 0 is never an anchor. The buy and the sell branch are evaluated
// independently at every anchor bar, the result is ordered from the oldest anchor to the
// most recent one.
func ScanTrianglesWithBuffers(anchor, confirm types.PivotBuffer, opts TriangleOptions) ([]types.Triangle, error) {
	n := anchor.Len()
	if confirm.Len() != n {
		return nil, fmt.Errorf("%w: %d != %d", ErrBufferMismatch, n, confirm.Len())
	}

	branches := []triangleBranch{
		{
			side:   types.SideTypeBuy,
			point1: anchor.Low,
			point2: confirm.High,
			point3: confirm.Low,
			accept: func(price, price1 float64) bool { return price >= price1 },
		},
		{
			side:   types.SideTypeSell,
			point1: anchor.High,
			point2: confirm.Low,
			point3: confirm.High,
			accept: func(price, price1 float64) bool { return price <= price1 },
		},
	}

	scanLimit := opts.MaxBars
	if n-1 < scanLimit {
		scanLimit = n - 1
	}

	var triangles []types.Triangle
	for bar := scanLimit; bar >= 1; bar-- {
		for _, b := range branches {
			if t, ok := b.scan(anchor, bar, opts.MaxDistance); ok {
				triangles = append(triangles, t)
			}
		}
	}

	return triangles, nil
}

type triangleBranch struct {
	side types.SideType

	// point1 is the anchor buffer of this side, point2 is the counter-extreme buffer and
	// point3 the same-direction buffer of the confirm level
	point1, point2, point3 floats.Slice

	accept func(price, price1 float64) bool
}

func (b *triangleBranch) scan(anchor types.PivotBuffer, bar int, maxDistance float64) (types.Triangle, bool) {
	price1 := b.point1[bar]
	if price1 <= 0 {
		return types.Triangle{}, false
	}

	t := types.Triangle{Side: b.side, Bar1: bar, Price1: price1, Bar2: -1, Bar3: -1}
	found2 := false

	for lv := bar - 1; lv >= 1; lv-- {
		// a new anchor-level extreme invalidates the search
		if anchor.IsPivot(lv) {
			return types.Triangle{}, false
		}

		if !found2 {
			if price := b.point2[lv]; price > 0 && b.accept(price, price1) {
				t.Price2, t.Bar2 = price, lv
				found2 = true
			}
		} else if lv+1 < len(b.point3) {
			// point 3 is looked up one bar newer than the scan position
			if price := b.point3[lv+1]; price > 0 && b.accept(price, price1) {
				t.Price3, t.Bar3 = price, lv+1
			}
		}

		if t.Price2 > 0 && t.Price3 > 0 {
			if math.Abs(t.Price2-t.Price1) < maxDistance {
				return t, true
			}

			return types.Triangle{}, false
		}
	}

	return types.Triangle{}, false
}
