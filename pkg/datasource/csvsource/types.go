package csvsource

import (
	"time"

	"github.com/c9s/semafor/pkg/types"
)

// KLineReader is an interface for reading candlesticks.
type KLineReader interface {
	Read(interval time.Duration) (types.KLine, error)
	ReadAll(interval time.Duration) ([]types.KLine, error)
}

// Format selects the decoder of a csv file
type Format string

const (
	// FormatHeader locates the time,open,high,low,close columns by the header row
	FormatHeader Format = "header"

	// FormatMetaTrader is the semicolon separated MetaTrader history export
	FormatMetaTrader Format = "metatrader"

	// FormatBinance is the headerless Binance / Bybit kline dump with unix milliseconds
	FormatBinance Format = "binance"
)
