package config

import (
	"github.com/c9s/semafor/pkg/datasource/csvsource"
	"github.com/c9s/semafor/pkg/envvar"
	"github.com/c9s/semafor/pkg/types"
)

const (
	EnvDataSource = "DATA_SOURCE"
	EnvCSVPath    = "CSV_PATH"
	EnvCSVFormat  = "CSV_FORMAT"
	EnvSymbol     = "SYMBOL"
	EnvTimeframe  = "TIMEFRAME"
	EnvBars       = "BARS"
	EnvPeriods    = "PERIODS"
	EnvDeviation  = "DEV"
	EnvBackstep   = "BACKSTEP"
	EnvBigLevel   = "BIG_LEVEL"
	EnvSmallLevel = "SMALL_LEVEL"
	EnvMaxDist    = "MAXDIST"
	EnvPlot       = "PLOT"
	EnvOutPath    = "OUT_PATH"
	EnvStartDate  = "START_DATE"
	EnvEndDate    = "END_DATE"
)

// LoadSourceFromEnv fills the data source settings from the environment
func LoadSourceFromEnv(c *Config) {
	envvar.SetString(EnvDataSource, &c.Source)
	envvar.SetString(EnvCSVPath, &c.CSVPath)

	var format string
	if envvar.SetString(EnvCSVFormat, &format) {
		c.CSVFormat = csvsource.Format(format)
	}
}

// LoadFromEnv overrides every field that has its environment variable set
func LoadFromEnv(c *Config) {
	LoadSourceFromEnv(c)

	envvar.SetString(EnvSymbol, &c.Symbol)

	var tf string
	if envvar.SetString(EnvTimeframe, &tf) {
		c.Timeframe = types.Timeframe(tf)
		if parsed, err := types.ParseTimeframe(tf); err == nil {
			c.Timeframe = parsed
		}
	}

	envvar.SetInt(EnvBars, &c.Bars)
	envvar.SetIntSlice(EnvPeriods, &c.Periods)
	envvar.SetFloat(EnvDeviation, &c.Deviation)
	envvar.SetInt(EnvBackstep, &c.Backstep)
	envvar.SetInt(EnvBigLevel, &c.BigLevel)
	envvar.SetInt(EnvSmallLevel, &c.SmallLevel)
	envvar.SetFloat(EnvMaxDist, &c.MaxDistance)
	envvar.SetBool(EnvPlot, &c.Plot)
	envvar.SetString(EnvOutPath, &c.OutPath)
	envvar.SetString(EnvStartDate, &c.StartDate)
	envvar.SetString(EnvEndDate, &c.EndDate)
}
