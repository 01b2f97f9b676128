package types

import "strings"

const (
	Green = "#228B22"
	Red   = "#800000"
)

// SideType defines the direction of a triangle pattern
type SideType string

const (
	SideTypeBuy  = SideType("BUY")
	SideTypeSell = SideType("SELL")
)

func (side SideType) Reverse() SideType {
	switch side {
	case SideTypeBuy:
		return SideTypeSell

	case SideTypeSell:
		return SideTypeBuy
	}

	return side
}

func (side SideType) Color() string {
	if side == SideTypeBuy {
		return Green
	}

	if side == SideTypeSell {
		return Red
	}

	return "#f0f0f0"
}

func (side SideType) String() string {
	return string(side)
}

// Lower returns the lower-case name, "buy" or "sell"
func (side SideType) Lower() string {
	return strings.ToLower(string(side))
}

func SideToColorName(side SideType) string {
	return side.Color()
}
