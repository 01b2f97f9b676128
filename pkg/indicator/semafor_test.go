package indicator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/semafor/pkg/types"
)

func testSeries() (highs, lows []float64) {
	highs = []float64{
		101, 104, 108, 106, 103, 99, 97, 100, 105, 110,
		112, 109, 104, 100, 96, 93, 95, 99, 103, 107,
		111, 114, 110, 106, 102, 98, 95, 97, 101, 104,
	}
	lows = make([]float64, len(highs))
	for i, h := range highs {
		lows[i] = h - 3
	}
	return highs, lows
}

func TestSemafor(t *testing.T) {
	highs, lows := testSeries()
	depths := []int{13, 5, 2}
	opts := SemaforOptions{Deviation: 1, Backstep: 1}

	levels, err := Semafor(highs, lows, depths, opts)
	require.NoError(t, err)
	require.Len(t, levels, 3)

	for i, depth := range depths {
		assert.Equal(t, i+1, levels[i].Index)
		assert.Equal(t, depth, levels[i].Depth)

		expected, err := ZigZag(highs, lows, ZigZagOptions{Depth: depth, Deviation: 1, Backstep: 1})
		require.NoError(t, err)
		assert.Equal(t, expected, levels[i].Buffer, "level %d", i+1)
	}

	level, ok := levels.Get(2)
	if assert.True(t, ok) {
		assert.Equal(t, 5, level.Depth)
	}

	_, ok = levels.Get(4)
	assert.False(t, ok)
	assert.Equal(t, depths, levels.Depths())
}

func TestSemafor_Error(t *testing.T) {
	highs, lows := testSeries()

	_, err := Semafor(highs, lows, []int{5, 0}, SemaforOptions{})
	assert.ErrorIs(t, err, ErrInvalidDepth)
	assert.ErrorIs(t, err, types.ErrConfiguration)
	assert.Contains(t, err.Error(), "level 2 (depth 0)")

	_, err = Semafor(highs, lows[1:], []int{5}, SemaforOptions{})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSemafor_Empty(t *testing.T) {
	highs, lows := testSeries()
	levels, err := Semafor(highs, lows, nil, SemaforOptions{})
	require.NoError(t, err)
	assert.Empty(t, levels)
}

func TestSemaforParallel(t *testing.T) {
	highs, lows := testSeries()
	depths := []int{21, 13, 8, 5, 3, 2, 1}
	opts := SemaforOptions{Deviation: 2, Backstep: 2}

	sequential, err := Semafor(highs, lows, depths, opts)
	require.NoError(t, err)

	parallel, err := SemaforParallel(context.Background(), highs, lows, depths, opts)
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)

	t.Run("error", func(t *testing.T) {
		_, err := SemaforParallel(context.Background(), highs, lows, []int{3, -1, 2}, opts)
		assert.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := SemaforParallel(ctx, highs, lows, depths, opts)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
