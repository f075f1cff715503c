package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/stockind/pkg/cleaner"
	"github.com/c9s/stockind/pkg/cmd/cmdutil"
	"github.com/c9s/stockind/pkg/indicator"
	"github.com/c9s/stockind/pkg/types"

	log "github.com/sirupsen/logrus"
)

// go run ./cmd/stockind chaikin --file quotes.csv --fast 3 --slow 10
func newChaikinCmd(v *viper.Viper) *cobra.Command {
	chaikinCmd := &cobra.Command{
		Use:          "chaikin",
		Short:        "calculate the chaikin oscillator of a daily quote history",
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

			history, err := cleaner.PrepareHistory(quotes)
			if err != nil {
				return err
			}

			results, err := indicator.ChaikinOsc(history, conf.Chaikin.FastPeriods, conf.Chaikin.SlowPeriods)
			if err != nil {
				return err
			}

			log.Infof("calculated chaikin oscillator(%d, %d) over %d periods",
				conf.Chaikin.FastPeriods, conf.Chaikin.SlowPeriods, len(results))

			return renderChaikinOsc(cmd.OutOrStdout(), conf.Output, types.ChaikinOscResultSlice(results), !v.GetBool("no-color"))
		},
	}

	cmdutil.InputFlags(chaikinCmd.Flags())
	cmdutil.OutputFlags(chaikinCmd.Flags())
	chaikinCmd.Flags().Int("fast", indicator.DefaultChaikinFastPeriods, "fast EMA periods of the accumulation/distribution line")
	chaikinCmd.Flags().Int("slow", indicator.DefaultChaikinSlowPeriods, "slow EMA periods of the accumulation/distribution line")
	return chaikinCmd
}
