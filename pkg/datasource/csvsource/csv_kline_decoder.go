package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c9s/semafor/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")

	// ErrMissingColumn is returned when the header row does not name a required column.
	ErrMissingColumn = errors.New("missing column")
)

// timeLayouts are tried in order by the header decoder
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006.01.02 15:04:05",
	"2006.01.02 15:04",
	"2006.01.02",
}

// CSVKLineDecoder is an extension point for CSVKLineReader to support custom file formats.
type CSVKLineDecoder func(record []string, interval time.Duration) (types.KLine, error)

// NewBinanceCSVKLineReader creates a new CSVKLineReader for Binance CSV files.
func NewBinanceCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: BinanceCSVKLineDecoder,
	}
}

// BinanceCSVKLineDecoder decodes a CSV record from Binance or Bybit into a KLine.
func BinanceCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 5 {
		return k, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	k.StartTime = time.UnixMilli(msec).UTC()
	k.EndTime = k.StartTime.Add(interval)
	if err := parseOHLC(&k, record[1], record[2], record[3], record[4]); err != nil {
		return empty, err
	}

	if len(record) > 5 {
		if k.Volume, err = parseVolume(record[5]); err != nil {
			return empty, err
		}
	}

	return k, nil
}

// NewMetaTraderCSVKLineReader creates a new CSVKLineReader for MetaTrader CSV files.
func NewMetaTraderCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	csv.Comma = ';'
	return &CSVKLineReader{
		csv:     csv,
		decoder: MetaTraderCSVKLineDecoder,
	}
}

// MetaTraderCSVKLineDecoder decodes a CSV record from MetaTrader into a KLine.
func MetaTraderCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 6 {
		return k, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return empty, ErrInvalidTimeFormat
	}

	k.StartTime = t
	k.EndTime = t.Add(interval)
	if err := parseOHLC(&k, record[2], record[3], record[4], record[5]); err != nil {
		return empty, err
	}

	if len(record) > 6 {
		if k.Volume, err = parseVolume(record[6]); err != nil {
			return empty, err
		}
	}

	return k, nil
}

// headerColumns holds the column positions found in a header row, -1 when absent
type headerColumns struct {
	time, date, clock              int
	open, high, low, close, volume int
}

func normalizeColumnName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.Trim(s, "<>")
}

// MakeHeaderCSVKLineDecoder locates the columns by the header names (case-insensitive).
// The time is taken from one of time/datetime/timestamp or from a date + time pair as
// exported by MetaTrader 5. Volume is optional.
func MakeHeaderCSVKLineDecoder(header []string) (CSVKLineDecoder, error) {
	cols := headerColumns{-1, -1, -1, -1, -1, -1, -1, -1}
	for i, name := range header {
		switch normalizeColumnName(name) {
		case "time":
			cols.clock = i
		case "datetime", "timestamp", "open_time", "opentime":
			cols.time = i
		case "date":
			cols.date = i
		case "open":
			cols.open = i
		case "high":
			cols.high = i
		case "low":
			cols.low = i
		case "close":
			cols.close = i
		case "volume", "tick_volume", "tickvol", "vol":
			if cols.volume < 0 {
				cols.volume = i
			}
		}
	}

	// a lone "time" column carries the full timestamp
	if cols.time < 0 && cols.date < 0 {
		cols.time, cols.clock = cols.clock, -1
	}

	var missing []string
	if cols.time < 0 && cols.date < 0 {
		missing = append(missing, "time")
	}
	for _, c := range []struct {
		name string
		idx  int
	}{{"open", cols.open}, {"high", cols.high}, {"low", cols.low}, {"close", cols.close}} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ","))
	}

	width := 0
	for _, idx := range []int{cols.time, cols.date, cols.clock, cols.open, cols.high, cols.low, cols.close, cols.volume} {
		if idx+1 > width {
			width = idx + 1
		}
	}

	return func(record []string, interval time.Duration) (types.KLine, error) {
		var k, empty types.KLine
		if len(record) < width {
			return empty, ErrNotEnoughColumns
		}

		var tStr string
		switch {
		case cols.time >= 0:
			tStr = record[cols.time]
		case cols.clock >= 0:
			tStr = record[cols.date] + " " + record[cols.clock]
		default:
			tStr = record[cols.date]
		}

		t, err := ParseTime(tStr)
		if err != nil {
			return empty, err
		}

		k.StartTime = t
		k.EndTime = t.Add(interval)
		if err := parseOHLC(&k, record[cols.open], record[cols.high], record[cols.low], record[cols.close]); err != nil {
			return empty, err
		}

		if cols.volume >= 0 {
			if k.Volume, err = parseVolume(record[cols.volume]); err != nil {
				return empty, err
			}
		}

		return k, nil
	}, nil
}

// ParseTime parses the bar open time. Integers are unix seconds, or milliseconds
// when they have 13 or more digits.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTimeFormat
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if len(strings.TrimPrefix(s, "-")) >= 13 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

func parseOHLC(k *types.KLine, open, high, low, close string) error {
	var err error
	for _, f := range []struct {
		dst *float64
		src string
	}{
		{&k.Open, open},
		{&k.High, high},
		{&k.Low, low},
		{&k.Close, close},
	} {
		*f.dst, err = strconv.ParseFloat(strings.TrimSpace(f.src), 64)
		if err != nil {
			return ErrInvalidPriceFormat
		}
	}

	return nil
}

func parseVolume(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidVolumeFormat
	}

	return v, nil
}
