package types

import (
	"fmt"
	"time"
)

// KLine is one OHLC bar as it is loaded from a data source, in file order (oldest first).
type KLine struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (k KLine) GetStartTime() time.Time {
	return k.StartTime
}

func (k KLine) GetEndTime() time.Time {
	return k.EndTime
}

func (k KLine) Mid() float64 {
	return (k.High + k.Low) / 2.0
}

func (k KLine) String() string {
	return fmt.Sprintf("%s O: %.4f H: %.4f L: %.4f C: %.4f V: %.4f",
		k.StartTime.Format(time.RFC3339), k.Open, k.High, k.Low, k.Close, k.Volume)
}
