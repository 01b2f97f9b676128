package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c9s/semafor/pkg/datatype/floats"
)

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		give    string
		want    Timeframe
		minutes int
		wantErr bool
	}{
		{give: "M15", want: TimeframeM15, minutes: 15},
		{give: "h1", want: TimeframeH1, minutes: 60},
		{give: " d1 ", want: TimeframeD1, minutes: 1440},
		{give: "mn1", want: TimeframeMN1, minutes: 43200},
		{give: "M7", wantErr: true},
		{give: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			tf, err := ParseTimeframe(tt.give)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, tf)
			assert.Equal(t, tt.minutes, tf.Minutes())
			assert.Equal(t, time.Duration(tt.minutes)*time.Minute, tf.Duration())
		})
	}
}

func TestTimeframe_Unmarshal(t *testing.T) {
	var s struct {
		Timeframe Timeframe `json:"timeframe" yaml:"timeframe"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"timeframe":"h4"}`), &s))
	assert.Equal(t, TimeframeH4, s.Timeframe)

	require.NoError(t, yaml.Unmarshal([]byte("timeframe: w1\n"), &s))
	assert.Equal(t, TimeframeW1, s.Timeframe)

	assert.Error(t, json.Unmarshal([]byte(`{"timeframe":"x"}`), &s))
	assert.Error(t, yaml.Unmarshal([]byte("timeframe: x\n"), &s))
}

func TestNewPriceSeriesFromKLines(t *testing.T) {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	klines := []KLine{
		{StartTime: base, High: 11, Low: 9, Close: 10},
		{StartTime: base.Add(time.Hour), High: 12, Low: 10, Close: 11},
		{StartTime: base.Add(2 * time.Hour), High: 13, Low: 11, Close: 12},
	}

	s := NewPriceSeriesFromKLines(klines)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, floats.Slice{13, 12, 11}, s.Highs)
	assert.Equal(t, floats.Slice{11, 10, 9}, s.Lows)
	assert.Equal(t, floats.Slice{12, 11, 10}, s.Closes)
	assert.Equal(t, base.Add(2*time.Hour), s.Times[0])
	assert.NoError(t, s.Validate())

	assert.Equal(t, 2, s.PlotIndex(0))
	assert.Equal(t, 0, s.PlotIndex(2))

	s.Lows = s.Lows[1:]
	assert.ErrorIs(t, s.Validate(), ErrConfiguration)

	empty := NewPriceSeriesFromKLines(nil)
	assert.Equal(t, 0, empty.Len())
	assert.NoError(t, empty.Validate())
}

func TestKLine(t *testing.T) {
	start := time.Date(2024, 1, 2, 10, 15, 0, 0, time.UTC)
	k := KLine{StartTime: start, EndTime: start.Add(time.Hour), Open: 1, High: 2, Low: 1, Close: 1.5}
	assert.Equal(t, 1.5, k.Mid())
	assert.Equal(t, start, k.GetStartTime())
	assert.Equal(t, start.Add(time.Hour), k.GetEndTime())
	assert.Contains(t, k.String(), "2024-01-02T10:15:00Z")
}

func TestTriangle(t *testing.T) {
	tr := Triangle{Side: SideTypeBuy, Bar1: 4, Price1: 100, Bar2: 3, Price2: 105, Bar3: 3, Price3: 102}
	assert.Equal(t, "BUY 1(4,100) 2(3,105) 3(3,102)", tr.String())
	assert.Equal(t, 5.0, tr.Distance())

	sell := Triangle{Side: SideTypeSell, Bar1: 9, Price1: 1.1052, Bar2: 8, Price2: 1.1031, Bar3: 7, Price3: 1.1049}
	assert.InDelta(t, 0.0021, sell.Distance(), 1e-12)
	assert.Equal(t, [][]string{{"sell", "9", "1.1052", "8", "1.1031", "7", "1.1049"}}, sell.CsvRecords())
	assert.Len(t, sell.CsvHeader(), 7)

	var _ CsvFormatter = tr
}

func TestSideType(t *testing.T) {
	assert.Equal(t, SideTypeSell, SideTypeBuy.Reverse())
	assert.Equal(t, SideTypeBuy, SideTypeSell.Reverse())
	assert.Equal(t, Green, SideTypeBuy.Color())
	assert.Equal(t, Red, SideToColorName(SideTypeSell))
	assert.Equal(t, "buy", SideTypeBuy.Lower())
}

func TestPivotBuffer(t *testing.T) {
	b := PivotBuffer{Low: floats.New(0, 2, 0), High: floats.New(5, 0, 0)}
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 1, b.LowCount())
	assert.Equal(t, 1, b.HighCount())
	assert.True(t, b.IsPivot(0))
	assert.True(t, b.IsPivot(1))
	assert.False(t, b.IsPivot(2))
	assert.False(t, b.IsPivot(10))
}

func TestLevels(t *testing.T) {
	levels := Levels{
		{Index: 1, Depth: 13, Buffer: NewPivotBuffer(2)},
		{Index: 2, Depth: 5, Buffer: NewPivotBuffer(2)},
	}

	l, ok := levels.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "level 2 (depth 5)", l.String())

	_, ok = levels.Get(3)
	assert.False(t, ok)

	assert.Equal(t, []int{13, 5}, levels.Depths())
	assert.Len(t, levels.Buffers(), 2)
}
