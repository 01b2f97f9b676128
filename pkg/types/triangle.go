package types

import (
	"fmt"
	"strconv"
)

// Triangle is a three-point 1-2-3 formation. The bars use the newest-first series index.
type Triangle struct {
	Side SideType `json:"side"`

	Bar1   int     `json:"bar1"`
	Price1 float64 `json:"price1"`

	Bar2   int     `json:"bar2"`
	Price2 float64 `json:"price2"`

	Bar3   int     `json:"bar3"`
	Price3 float64 `json:"price3"`
}

func (t Triangle) String() string {
	return fmt.Sprintf("%s 1(%d,%s) 2(%d,%s) 3(%d,%s)",
		t.Side,
		t.Bar1, formatPrice(t.Price1),
		t.Bar2, formatPrice(t.Price2),
		t.Bar3, formatPrice(t.Price3))
}

// Distance is the absolute gap between point 1 and point 2
func (t Triangle) Distance() float64 {
	d := t.Price2 - t.Price1
	if d < 0 {
		return -d
	}
	return d
}

func (t Triangle) CsvHeader() []string {
	return []string{"side", "bar1", "price1", "bar2", "price2", "bar3", "price3"}
}

func (t Triangle) CsvRecords() [][]string {
	return [][]string{
		{
			t.Side.Lower(),
			strconv.Itoa(t.Bar1), formatPrice(t.Price1),
			strconv.Itoa(t.Bar2), formatPrice(t.Price2),
			strconv.Itoa(t.Bar3), formatPrice(t.Price3),
		},
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
