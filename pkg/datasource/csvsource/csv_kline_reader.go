package csvsource

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/c9s/semafor/pkg/types"
)

var _ KLineReader = (*CSVKLineReader)(nil)

// CSVKLineReader is a KLineReader that reads from a CSV file.
type CSVKLineReader struct {
	csv     *csv.Reader
	decoder CSVKLineDecoder

	// makeDecoder builds the decoder from the header row when decoder is not set yet
	makeDecoder func(header []string) (CSVKLineDecoder, error)
}

// MakeCSVKLineReader is a factory method type that creates a new CSVKLineReader.
type MakeCSVKLineReader func(csv *csv.Reader) *CSVKLineReader

// NewCSVKLineReader creates a new CSVKLineReader with the default header decoder.
func NewCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return NewHeaderCSVKLineReader(csv)
}

// NewCSVKLineReaderWithDecoder creates a new CSVKLineReader with the given decoder.
func NewCSVKLineReaderWithDecoder(csv *csv.Reader, decoder CSVKLineDecoder) *CSVKLineReader {
	return &CSVKLineReader{
		csv:     csv,
		decoder: decoder,
	}
}

// NewHeaderCSVKLineReader creates a CSVKLineReader that consumes the first record as the
// header row and locates the columns by their names.
func NewHeaderCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	csv.TrimLeadingSpace = true
	return &CSVKLineReader{
		csv:         csv,
		makeDecoder: MakeHeaderCSVKLineDecoder,
	}
}

// Read reads the next KLine from the underlying CSV data.
func (r *CSVKLineReader) Read(interval time.Duration) (types.KLine, error) {
	var k types.KLine

	if r.decoder == nil {
		header, err := r.csv.Read()
		if err != nil {
			return k, err
		}

		decoder, err := r.makeDecoder(header)
		if err != nil {
			return k, err
		}

		r.decoder = decoder
	}

	rec, err := r.csv.Read()
	if err != nil {
		return k, err
	}

	return r.decoder(rec, interval)
}

// ReadAll reads all the KLines from the underlying CSV data.
func (r *CSVKLineReader) ReadAll(interval time.Duration) ([]types.KLine, error) {
	var ks []types.KLine
	for {
		k, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ks = append(ks, k)
	}

	return ks, nil
}
