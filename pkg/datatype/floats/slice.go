package floats

import (
	"math"
)

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

// Zeros allocates a slice of n zero values
func Zeros(n int) Slice {
	if n < 0 {
		n = 0
	}
	return make(Slice, n)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Max() float64 {
	m := -math.MaxFloat64
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.MaxFloat64
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

// Window returns the sub slice [start, start+size), clamped to the slice boundary.
// The returned slice shares the underlying array.
func (s Slice) Window(start, size int) Slice {
	length := len(s)
	if start < 0 {
		start = 0
	}
	if start >= length || size <= 0 {
		return Slice{}
	}

	end := start + size
	if end > length {
		end = length
	}
	return s[start:end]
}

func (s Slice) Sub(b Slice) (c Slice) {
	if len(s) != len(b) {
		return c
	}

	c = make(Slice, len(s))
	for i := 0; i < len(s); i++ {
		c[i] = s[i] - b[i]
	}
	return c
}

func (s Slice) Add(b Slice) (c Slice) {
	if len(s) != len(b) {
		return c
	}

	c = make(Slice, len(s))
	for i := 0; i < len(s); i++ {
		c[i] = s[i] + b[i]
	}
	return c
}

func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}

// Reverse returns a reversed copy
func (s Slice) Reverse() Slice {
	out := make(Slice, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// CountNonZero counts the entries that are not zero
func (s Slice) CountNonZero() (n int) {
	for _, v := range s {
		if v != 0.0 {
			n++
		}
	}
	return n
}

// Index returns the value at index i, 0 when out of range.
func (s Slice) Index(i int) float64 {
	if i < 0 || i >= len(s) {
		return 0.0
	}
	return s[i]
}

func (s Slice) Clone() Slice {
	out := make(Slice, len(s))
	copy(out, s)
	return out
}
