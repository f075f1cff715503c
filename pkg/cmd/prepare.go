package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/stockind/pkg/cleaner"
	"github.com/c9s/stockind/pkg/cmd/cmdutil"
	"github.com/c9s/stockind/pkg/types"

	log "github.com/sirupsen/logrus"
)

// go run ./cmd/stockind prepare --file quotes.csv --part close
func newPrepareCmd(v *viper.Viper) *cobra.Command {
	prepareCmd := &cobra.Command{
		Use:          "prepare",
		Short:        "validate a daily quote history and print it sorted and indexed",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(v)
			if err != nil {
				return err
			}

			quotes, err := readQuotes(conf)
			if err != nil {
				return err
			}

			if conf.Input.Part == "" {
				history, err := cleaner.PrepareHistory(quotes)
				if err != nil {
					return err
				}

				log.Infof("history is valid, %d quotes", len(history))
				return renderQuotes(cmd.OutOrStdout(), conf.Output, types.QuoteSlice(history))
			}

			series, err := cleaner.ConvertHistoryToBasic(quotes, conf.Input.Part)
			if err != nil {
				return err
			}

			// the projected series goes through its own validation
			series, err = cleaner.PrepareBasicData(series)
			if err != nil {
				return err
			}

			log.Infof("history is valid, %d %s values", len(series), conf.Input.Part)
			return renderBasicData(cmd.OutOrStdout(), conf.Output, types.BasicDataSlice(series))
		},
	}

	cmdutil.InputFlags(prepareCmd.Flags())
	cmdutil.OutputFlags(prepareCmd.Flags())
	prepareCmd.Flags().String("part", "", "only print one field of the quotes: O, H, L, C or V")
	return prepareCmd
}
