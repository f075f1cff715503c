package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/stockind/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "show version name",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		},
	}
}
