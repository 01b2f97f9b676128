package csvsource

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/c9s/semafor/pkg/types"
)

// ReadKLinesFromCSV reads all the .csv files in a given directory or a single file into a slice of KLines.
// Wraps a default CSVKLineReader with the header decoder for convenience.
// For finer grained memory management use the base kline reader.
func ReadKLinesFromCSV(path string, interval time.Duration) ([]types.KLine, error) {
	return ReadKLinesFromCSVWithDecoder(path, interval, MakeCSVKLineReader(NewHeaderCSVKLineReader))
}

// ReadKLinesFromCSVWithFormat reads the klines with the reader of the given format
func ReadKLinesFromCSVWithFormat(path string, interval time.Duration, format Format) ([]types.KLine, error) {
	maker, err := ReaderMakerOf(format)
	if err != nil {
		return nil, err
	}

	return ReadKLinesFromCSVWithDecoder(path, interval, maker)
}

// ReaderMakerOf returns the reader factory of a format, an empty format means FormatHeader
func ReaderMakerOf(format Format) (MakeCSVKLineReader, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatHeader, "":
		return NewHeaderCSVKLineReader, nil
	case FormatMetaTrader:
		return NewMetaTraderCSVKLineReader, nil
	case FormatBinance:
		return NewBinanceCSVKLineReader, nil
	}

	return nil, fmt.Errorf("%w: unsupported csv format %q", types.ErrConfiguration, format)
}

// ReadKLinesFromCSVWithDecoder permits using a custom CSVKLineReader.
// The klines are returned sorted by their start time.
func ReadKLinesFromCSVWithDecoder(path string, interval time.Duration, maker MakeCSVKLineReader) ([]types.KLine, error) {
	var klines []types.KLine

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file))
		newKlines, err := reader.ReadAll(interval)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		klines = append(klines, newKlines...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(klines, func(i, j int) bool {
		return klines[i].StartTime.Before(klines[j].StartTime)
	})

	return klines, nil
}

// FilterByTime keeps the klines whose start time falls in [start, end].
// A zero start or end leaves that side unbounded.
func FilterByTime(klines []types.KLine, start, end time.Time) []types.KLine {
	if start.IsZero() && end.IsZero() {
		return klines
	}

	var out []types.KLine
	for _, k := range klines {
		if !start.IsZero() && k.StartTime.Before(start) {
			continue
		}
		if !end.IsZero() && k.StartTime.After(end) {
			continue
		}
		out = append(out, k)
	}

	return out
}
