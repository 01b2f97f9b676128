package style

import (
	"github.com/fatih/color"

	"github.com/c9s/semafor/pkg/types"
)

var (
	buyColor  = color.New(color.FgGreen)
	sellColor = color.New(color.FgRed)
)

// SideColor returns the terminal color of a side
func SideColor(side types.SideType) *color.Color {
	if side == types.SideTypeSell {
		return sellColor
	}
	return buyColor
}
