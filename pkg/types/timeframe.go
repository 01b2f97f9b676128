package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timeframe uses the MetaTrader naming, e.g. M15, H1, D1
type Timeframe string

const (
	TimeframeM1  = Timeframe("M1")
	TimeframeM5  = Timeframe("M5")
	TimeframeM15 = Timeframe("M15")
	TimeframeM30 = Timeframe("M30")
	TimeframeH1  = Timeframe("H1")
	TimeframeH4  = Timeframe("H4")
	TimeframeD1  = Timeframe("D1")
	TimeframeW1  = Timeframe("W1")
	TimeframeMN1 = Timeframe("MN1")
)

var SupportedTimeframes = map[Timeframe]int{
	TimeframeM1:  1,
	TimeframeM5:  5,
	TimeframeM15: 15,
	TimeframeM30: 30,
	TimeframeH1:  60,
	TimeframeH4:  60 * 4,
	TimeframeD1:  60 * 24,
	TimeframeW1:  60 * 24 * 7,
	TimeframeMN1: 60 * 24 * 30,
}

// ParseTimeframe parses the timeframe name case-insensitively
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := SupportedTimeframes[tf]; !ok {
		return "", fmt.Errorf("%w: unsupported timeframe: %q", ErrConfiguration, s)
	}
	return tf, nil
}

func (tf Timeframe) Minutes() int {
	return SupportedTimeframes[tf]
}

func (tf Timeframe) Duration() time.Duration {
	return time.Duration(tf.Minutes()) * time.Minute
}

func (tf Timeframe) String() string {
	return string(tf)
}

func (tf *Timeframe) UnmarshalJSON(b []byte) error {
	var a string
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	parsed, err := ParseTimeframe(a)
	if err != nil {
		return err
	}

	*tf = parsed
	return nil
}

func (tf *Timeframe) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var a string
	if err := unmarshal(&a); err != nil {
		return err
	}

	parsed, err := ParseTimeframe(a)
	if err != nil {
		return err
	}

	*tf = parsed
	return nil
}
