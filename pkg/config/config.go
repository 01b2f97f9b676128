package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/semafor/pkg/datasource/csvsource"
	"github.com/c9s/semafor/pkg/types"
)

const SourceCSV = "csv"

// ErrNotEnoughPeriods is returned when a selected level has no period to compute it from
var ErrNotEnoughPeriods = fmt.Errorf("%w: not enough periods for selected levels", types.ErrConfiguration)

var validate = validator.New()

type Config struct {
	Source    string           `json:"source" yaml:"source" default:"csv" validate:"oneof=csv"`
	CSVPath   string           `json:"csvPath" yaml:"csvPath" validate:"required_if=Source csv"`
	CSVFormat csvsource.Format `json:"csvFormat" yaml:"csvFormat" default:"header" validate:"oneof=header metatrader binance"`
	Symbol    string           `json:"symbol" yaml:"symbol"`
	Timeframe types.Timeframe  `json:"timeframe" yaml:"timeframe" default:"M15"`

	// Bars caps the oldest anchor bar of the triangle scan
	Bars      int    `json:"bars" yaml:"bars" default:"2000" validate:"gte=1"`
	StartDate string `json:"startDate,omitempty" yaml:"startDate"`
	EndDate   string `json:"endDate,omitempty" yaml:"endDate"`

	// Periods are the zigzag depths of level 1, 2, ... in order
	Periods   []int   `json:"periods" yaml:"periods" default:"[610,377,233,144,89,55,34,8]" validate:"min=1,dive,gte=1"`
	Deviation float64 `json:"deviation" yaml:"deviation" default:"1" validate:"gte=0"`
	Backstep  int     `json:"backstep" yaml:"backstep" default:"1" validate:"gte=0"`

	BigLevel    int     `json:"bigLevel" yaml:"bigLevel" default:"7" validate:"gte=1"`
	SmallLevel  int     `json:"smallLevel" yaml:"smallLevel" default:"8" validate:"gte=1"`
	MaxDistance float64 `json:"maxDistance" yaml:"maxDistance" default:"10000" validate:"gt=0"`

	Plot     bool   `json:"plot" yaml:"plot"`
	OutPath  string `json:"outPath,omitempty" yaml:"outPath"`
	Output   string `json:"output" yaml:"output" default:"text" validate:"oneof=text table csv"`
	Parallel bool   `json:"parallel" yaml:"parallel"`
}

// Default returns the config with every default applied
func Default() *Config {
	var config Config
	if err := defaults.Set(&config); err != nil {
		panic(err)
	}

	return &config
}

// Load reads the yaml file over the defaults. The returned config is not validated.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read config file %s", configFile)
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
	}

	return config, nil
}

// Validate reports every violation at once
func (c *Config) Validate() error {
	var err error

	if vErr := validate.Struct(c); vErr != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(vErr, &fieldErrors) {
			for _, fe := range fieldErrors {
				err = multierr.Append(err, fmt.Errorf("%w: %s failed on %s %s", types.ErrConfiguration, fe.Namespace(), fe.Tag(), fe.Param()))
			}
		} else {
			err = multierr.Append(err, vErr)
		}
	}

	if _, tfErr := types.ParseTimeframe(string(c.Timeframe)); tfErr != nil {
		err = multierr.Append(err, tfErr)
	}

	if maxLevel := c.MaxLevel(); maxLevel > len(c.Periods) {
		err = multierr.Append(err, fmt.Errorf("%w: level %d needs %d periods, got %d", ErrNotEnoughPeriods, maxLevel, maxLevel, len(c.Periods)))
	}

	start, startErr := ParseTime(c.StartDate)
	if startErr != nil {
		err = multierr.Append(err, errors.Wrap(startErr, "startDate"))
	}

	end, endErr := ParseTime(c.EndDate)
	if endErr != nil {
		err = multierr.Append(err, errors.Wrap(endErr, "endDate"))
	}

	if startErr == nil && endErr == nil && !start.IsZero() && !end.IsZero() && start.After(end) {
		err = multierr.Append(err, fmt.Errorf("%w: startDate %s is after endDate %s", types.ErrConfiguration, c.StartDate, c.EndDate))
	}

	return err
}

// MaxLevel is the larger of the big and the small level
func (c *Config) MaxLevel() int {
	if c.BigLevel > c.SmallLevel {
		return c.BigLevel
	}
	return c.SmallLevel
}

// TimeRange returns the parsed start and end dates, zero when unset
func (c *Config) TimeRange() (start, end time.Time, err error) {
	if start, err = ParseTime(c.StartDate); err != nil {
		return
	}

	end, err = ParseTime(c.EndDate)
	return
}

// ParseTime parses a date or a date time, an empty string gives the zero time
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := csvsource.ParseTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", types.ErrConfiguration, err)
	}

	return t, nil
}
