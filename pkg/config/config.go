package config

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/c9s/stockind/pkg/indicator"
	"github.com/c9s/stockind/pkg/types"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatCSV   OutputFormat = "csv"
)

var ErrInvalidOutputFormat = errors.New("invalid output format, valid formats: table, json, csv")

func (f OutputFormat) Valid() bool {
	switch f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatCSV:
		return true
	}
	return false
}

type ChaikinConfig struct {
	FastPeriods int `json:"fastPeriods" yaml:"fastPeriods"`
	SlowPeriods int `json:"slowPeriods" yaml:"slowPeriods"`
}

type InputConfig struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Part selects the field used by single-value commands, e.g. prepare --part
	Part types.CandlePart `json:"part,omitempty" yaml:"part,omitempty"`
}

type OutputConfig struct {
	Format OutputFormat `json:"format" yaml:"format"`

	// Tail limits the output to the last N periods, 0 prints everything
	Tail int `json:"tail,omitempty" yaml:"tail,omitempty"`
}

type Config struct {
	Chaikin ChaikinConfig `json:"chaikin" yaml:"chaikin"`
	Input   InputConfig   `json:"input" yaml:"input"`
	Output  OutputConfig  `json:"output" yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Chaikin: ChaikinConfig{
			FastPeriods: indicator.DefaultChaikinFastPeriods,
			SlowPeriods: indicator.DefaultChaikinSlowPeriods,
		},
		Output: OutputConfig{
			Format: OutputFormatTable,
		},
	}
}

// Validate collects every configuration error.
func (c *Config) Validate() (err error) {
	err = multierr.Append(err, indicator.ValidateChaikinOscPeriods(c.Chaikin.FastPeriods, c.Chaikin.SlowPeriods))

	if c.Input.Part != "" && !c.Input.Part.Valid() {
		err = multierr.Append(err, errors.Wrapf(types.ErrInvalidCandlePart, "input.part %q", c.Input.Part))
	}

	if !c.Output.Format.Valid() {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidOutputFormat, "given %q", c.Output.Format))
	}

	if c.Output.Tail < 0 {
		err = multierr.Append(err, errors.Errorf("output.tail must not be negative, given %d", c.Output.Tail))
	}

	return err
}
