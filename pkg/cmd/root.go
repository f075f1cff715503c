package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/stockind/pkg/cmd/cmdutil"
)

// EnvPrefix is the prefix of the environment variables bound to the flags, e.g. STOCKIND_DEBUG
const EnvPrefix = "STOCKIND"

var RootCmd = NewRootCmd()

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "stockind",
		Short: "stock indicator calculator",
		Long:  "validate daily quote histories and calculate the chaikin oscillator",

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Once the flags are defined, we can bind config keys with flags.
			if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			if err := cmdutil.LoadDotenv(v.GetString("dotenv")); err != nil {
				return err
			}

			cmdutil.SetupLogger(v.GetBool("debug"), v.GetString("log-file"))
			return nil
		},
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	v.AutomaticEnv()

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	// For global flags, assign a flag as a persistent flag on the root.
	cmdutil.PersistentFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newChaikinCmd(v),
		newPrepareCmd(v),
		newVersionCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
