package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/c9s/semafor/pkg/config"
	"github.com/c9s/semafor/pkg/datasource/csvsource"
	"github.com/c9s/semafor/pkg/indicator"
	"github.com/c9s/semafor/pkg/types"
)

// addSourceFlags registers the data source and level flags shared by scan and levels
func addSourceFlags(fs *flag.FlagSet) {
	fs.String("csv", "", "csv file or directory of csv files")
	fs.String("csv-format", string(csvsource.FormatHeader), "csv format: header, metatrader or binance")
	fs.Bool("use-env", false, "read every setting from the environment variables")
	fs.String("symbol", "", "symbol name used in the chart title")
	fs.String("timeframe", string(types.TimeframeM15), "bar timeframe, e.g. M15, H1, D1")
	fs.Int("bars", 2000, "number of the most recent bars to scan")
	fs.String("start-date", "", "skip bars before this date")
	fs.String("end-date", "", "skip bars after this date")
	fs.IntSlice("periods", indicator.DefaultPeriods, "zigzag depth of each level, level 1 first")
	fs.Float64("dev", 1, "zigzag deviation in price points")
	fs.Int("backstep", 1, "zigzag backstep")
	fs.Bool("parallel", false, "compute the levels concurrently")
}

// loadConfig resolves the config with the precedence defaults < config file < env < flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if configFile := viper.GetString("config"); configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	fs := cmd.Flags()
	useEnv, err := fs.GetBool("use-env")
	if err != nil {
		return nil, err
	}

	if useEnv {
		config.LoadFromEnv(cfg)
	} else if !fs.Changed("csv") {
		config.LoadSourceFromEnv(cfg)
	}

	if err := applyFlags(fs, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags copies the explicitly given flags into the config
func applyFlags(fs *flag.FlagSet, cfg *config.Config) error {
	var err error
	visit := func(name string, apply func() error) {
		if err != nil || fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		if applyErr := apply(); applyErr != nil {
			err = errors.Wrapf(applyErr, "flag --%s", name)
		}
	}

	visit("csv", func() (e error) { cfg.CSVPath, e = fs.GetString("csv"); return })
	visit("csv-format", func() error {
		s, e := fs.GetString("csv-format")
		cfg.CSVFormat = csvsource.Format(s)
		return e
	})
	visit("symbol", func() (e error) { cfg.Symbol, e = fs.GetString("symbol"); return })
	visit("timeframe", func() error {
		s, e := fs.GetString("timeframe")
		if e != nil {
			return e
		}
		cfg.Timeframe, e = types.ParseTimeframe(s)
		return e
	})
	visit("bars", func() (e error) { cfg.Bars, e = fs.GetInt("bars"); return })
	visit("start-date", func() (e error) { cfg.StartDate, e = fs.GetString("start-date"); return })
	visit("end-date", func() (e error) { cfg.EndDate, e = fs.GetString("end-date"); return })
	visit("periods", func() (e error) { cfg.Periods, e = fs.GetIntSlice("periods"); return })
	visit("dev", func() (e error) { cfg.Deviation, e = fs.GetFloat64("dev"); return })
	visit("backstep", func() (e error) { cfg.Backstep, e = fs.GetInt("backstep"); return })
	visit("big", func() (e error) { cfg.BigLevel, e = fs.GetInt("big"); return })
	visit("small", func() (e error) { cfg.SmallLevel, e = fs.GetInt("small"); return })
	visit("maxdist", func() (e error) { cfg.MaxDistance, e = fs.GetFloat64("maxdist"); return })
	visit("plot", func() (e error) { cfg.Plot, e = fs.GetBool("plot"); return })
	visit("out", func() (e error) { cfg.OutPath, e = fs.GetString("out"); return })
	visit("output", func() (e error) { cfg.Output, e = fs.GetString("output"); return })
	visit("parallel", func() (e error) { cfg.Parallel, e = fs.GetBool("parallel"); return })

	return err
}
