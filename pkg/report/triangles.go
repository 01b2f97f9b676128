package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/c9s/semafor/pkg/style"
	"github.com/c9s/semafor/pkg/types"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
)

type Options struct {
	Format    Format
	WithColor bool

	// Series gives the bar times in the table output when it has Times
	Series *types.PriceSeries
}

// PrintTriangles writes the triangles in the oldest anchor first order
func PrintTriangles(w io.Writer, triangles []types.Triangle, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return printText(w, triangles, opts.WithColor)
	case FormatTable:
		return printTable(w, triangles, opts)
	case FormatCSV:
		return printCSV(w, triangles)
	}

	return errors.Errorf("unsupported output format: %q", opts.Format)
}

func printText(w io.Writer, triangles []types.Triangle, withColor bool) error {
	if len(triangles) == 0 {
		_, err := fmt.Fprintln(w, "no triangles found")
		return err
	}

	for _, tr := range triangles {
		var err error
		if withColor {
			_, err = style.SideColor(tr.Side).Fprintln(w, tr.String())
		} else {
			_, err = fmt.Fprintln(w, tr.String())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func printTable(w io.Writer, triangles []types.Triangle, opts Options) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if opts.WithColor {
		t.SetStyle(*style.NewDefaultTableStyle())
	} else {
		t.SetStyle(*style.NewPlainTableStyle())
	}

	withTime := opts.Series != nil && len(opts.Series.Times) == opts.Series.Len()

	header := table.Row{"#", "side", "bar 1", "price 1", "bar 2", "price 2", "bar 3", "price 3", "distance"}
	if withTime {
		header = append(header, "time 1")
	}
	t.AppendHeader(header)

	for i, tr := range triangles {
		row := table.Row{
			i + 1, tr.Side,
			tr.Bar1, formatFloat(tr.Price1),
			tr.Bar2, formatFloat(tr.Price2),
			tr.Bar3, formatFloat(tr.Price3),
			formatFloat(tr.Distance()),
		}
		if withTime && tr.Bar1 < len(opts.Series.Times) {
			row = append(row, opts.Series.Times[tr.Bar1].Format("2006-01-02 15:04"))
		}
		t.AppendRow(row)
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d triangles", len(triangles))})
	t.Render()
	return nil
}

func printCSV(w io.Writer, triangles []types.Triangle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Triangle{}.CsvHeader()); err != nil {
		return err
	}

	for _, tr := range triangles {
		if err := writeCsv(cw, tr); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeCsv(cw *csv.Writer, f types.CsvFormatter) error {
	return cw.WriteAll(f.CsvRecords())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
