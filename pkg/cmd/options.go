package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/c9s/stockind/pkg/config"
	"github.com/c9s/stockind/pkg/datasource/csvsource"
	"github.com/c9s/stockind/pkg/types"
)

// loadConfig merges the config file, the environment and the command line flags,
// later sources win.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	conf := config.Default()

	if configFile := v.GetString("config"); configFile != "" {
		var err error
		conf, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded config file %s", configFile)
	}

	if v.IsSet("fast") {
		conf.Chaikin.FastPeriods = v.GetInt("fast")
	}

	if v.IsSet("slow") {
		conf.Chaikin.SlowPeriods = v.GetInt("slow")
	}

	if v.IsSet("file") {
		conf.Input.File = v.GetString("file")
	}

	if v.IsSet("part") {
		part, err := types.ParseCandlePart(v.GetString("part"))
		if err != nil {
			return nil, err
		}
		conf.Input.Part = part
	}

	if v.IsSet("format") {
		conf.Output.Format = config.OutputFormat(v.GetString("format"))
	}

	if v.IsSet("tail") {
		conf.Output.Tail = v.GetInt("tail")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func readQuotes(conf *config.Config) ([]types.Quote, error) {
	if conf.Input.File == "" {
		return nil, errors.New("--file option or input.file config is required")
	}

	quotes, err := csvsource.ReadQuotesFromCSV(conf.Input.File)
	if err != nil {
		return nil, err
	}

	log.Infof("loaded %d quotes from %s", len(quotes), conf.Input.File)

	for _, q := range quotes {
		if q.InvertedRange() {
			log.Warnf("quote of %s has a high price below its low price: high=%s low=%s",
				q.Date.Format(types.DateFormat), q.High.String(), q.Low.String())
		}
	}

	return quotes, nil
}
