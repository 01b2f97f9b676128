package indicator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/c9s/semafor/pkg/types"
)

// DefaultPeriods are the depths of the eight classic semafor levels, the largest first.
var DefaultPeriods = []int{610, 377, 233, 144, 89, 55, 34, 8}

type SemaforOptions struct {
	Deviation float64 `json:"deviation"`
	Backstep  int     `json:"backstep"`
}

func (o SemaforOptions) zigZagOptions(depth int) ZigZagOptions {
	return ZigZagOptions{
		Depth:     depth,
		Deviation: o.Deviation,
		Backstep:  o.Backstep,
	}
}

// Semafor runs one ZigZag per depth. Level 1 is computed from depths[0], level 2 from
// depths[1] and so on.
func Semafor(highs, lows []float64, depths []int, opts SemaforOptions) (types.Levels, error) {
	levels := make(types.Levels, len(depths))
	for i, depth := range depths {
		level, err := computeLevel(highs, lows, i+1, depth, opts)
		if err != nil {
			return nil, err
		}

		levels[i] = level
	}

	return levels, nil
}

// SemaforParallel computes the same levels as Semafor with one goroutine per depth.
// The returned levels are still ordered by the level index.
func SemaforParallel(ctx context.Context, highs, lows []float64, depths []int, opts SemaforOptions) (types.Levels, error) {
	levels := make(types.Levels, len(depths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, depth := range depths {
		i, depth := i, depth
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			level, err := computeLevel(highs, lows, i+1, depth, opts)
			if err != nil {
				return err
			}

			levels[i] = level
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return levels, nil
}

func computeLevel(highs, lows []float64, index, depth int, opts SemaforOptions) (types.Level, error) {
	buf, err := ZigZag(highs, lows, opts.zigZagOptions(depth))
	if err != nil {
		return types.Level{}, fmt.Errorf("level %d (depth %d): %w", index, depth, err)
	}

	return types.Level{Index: index, Depth: depth, Buffer: buf}, nil
}
