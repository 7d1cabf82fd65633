package main

import (
	"os"
	"strings"

	"github.com/aretw0/rofiflow"
	"github.com/aretw0/rofiflow/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rofiflow",
	Run: func(cmd *cobra.Command, args []string) {
		out := termenv.NewOutput(os.Stdout)
		tui.PrintBanner(out, out.EnvColorProfile(), strings.TrimSpace(rofiflow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
