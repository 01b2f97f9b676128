package report

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c9s/semafor/pkg/style"
	"github.com/c9s/semafor/pkg/types"
)

// PrintLevels writes one row per level with its pivot counts
func PrintLevels(w io.Writer, levels types.Levels, withColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if withColor {
		t.SetStyle(*style.NewDefaultTableStyle())
	} else {
		t.SetStyle(*style.NewPlainTableStyle())
	}

	t.AppendHeader(table.Row{"level", "depth", "lows", "highs", "last pivot"})

	var lows, highs int
	for _, level := range levels {
		lowCount, highCount := level.Buffer.LowCount(), level.Buffer.HighCount()
		lows += lowCount
		highs += highCount

		last := "-"
		for i := 0; i < level.Buffer.Len(); i++ {
			if level.Buffer.IsPivot(i) {
				if level.Buffer.Low[i] != 0 {
					last = "low @" + strconv.Itoa(i)
				} else {
					last = "high @" + strconv.Itoa(i)
				}
				break
			}
		}

		t.AppendRow(table.Row{level.Index, level.Depth, lowCount, highCount, last})
	}

	t.AppendFooter(table.Row{"", "total", lows, highs, ""})
	t.Render()
}
