package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file you want to load")
	flags.String("log-file", "", "also write json logs to this file, rotated by size")
	flags.Bool("no-color", false, "disable colored table output")
}

// InputFlags defines the flags used to locate the quote history
func InputFlags(flags *pflag.FlagSet) {
	flags.String("file", "", "csv file of daily quotes: date,open,high,low,close,volume")
}

// OutputFlags defines the flags used to render the results
func OutputFlags(flags *pflag.FlagSet) {
	flags.String("format", "table", "output format: table, json or csv")
	flags.Int("tail", 0, "only print the last N periods, 0 prints all of them")
}
