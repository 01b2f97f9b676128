package types

import "github.com/c9s/semafor/pkg/datatype/floats"

// PivotBuffer is the pair of pivot buffers computed for one depth. Both buffers are aligned
// to the PriceSeries index; a non-zero entry is a pivot price, zero means no pivot.
type PivotBuffer struct {
	Low  floats.Slice
	High floats.Slice
}

func NewPivotBuffer(n int) PivotBuffer {
	return PivotBuffer{
		Low:  floats.Zeros(n),
		High: floats.Zeros(n),
	}
}

func (b PivotBuffer) Len() int {
	return len(b.Low)
}

func (b PivotBuffer) LowCount() int {
	return b.Low.CountNonZero()
}

func (b PivotBuffer) HighCount() int {
	return b.High.CountNonZero()
}

// IsPivot reports whether bar i carries a pivot of either type
func (b PivotBuffer) IsPivot(i int) bool {
	return b.Low.Index(i) != 0.0 || b.High.Index(i) != 0.0
}
