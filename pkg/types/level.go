package types

import "fmt"

// Level is the pivot buffer of one depth, addressed by its 1-based index in the
// configured depth order.
type Level struct {
	Index  int
	Depth  int
	Buffer PivotBuffer
}

func (l Level) String() string {
	return fmt.Sprintf("level %d (depth %d)", l.Index, l.Depth)
}

// Levels is ordered by the level index
type Levels []Level

// Get looks up the level by its 1-based index
func (ls Levels) Get(index int) (Level, bool) {
	for _, l := range ls {
		if l.Index == index {
			return l, true
		}
	}

	return Level{}, false
}

// Buffers returns the level index to buffer mapping
func (ls Levels) Buffers() map[int]PivotBuffer {
	m := make(map[int]PivotBuffer, len(ls))
	for _, l := range ls {
		m[l.Index] = l.Buffer
	}
	return m
}

func (ls Levels) Depths() []int {
	depths := make([]int, len(ls))
	for i, l := range ls {
		depths[i] = l.Depth
	}
	return depths
}
