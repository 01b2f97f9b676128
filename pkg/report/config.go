package report

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintConfig dumps the exported fields of a struct with their json names and values
func PrintConfig(s interface{}, f io.Writer, style *table.Style) {
	t := table.NewWriter()
	t.SetOutputMirror(f)
	if style != nil {
		t.SetStyle(*style)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, WidthMax: 50, WidthMaxEnforcer: text.WrapText},
	})
	t.AppendHeader(table.Row{"json", "struct field name", "type", "value"})

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	for i := 0; i < val.Type().NumField(); i++ {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		t.AppendRow(table.Row{name, field.Name, field.Type.String(), fmt.Sprintf("%v", val.Field(i).Interface())})
	}

	t.Render()
}
