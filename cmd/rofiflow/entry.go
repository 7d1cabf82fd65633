package main

import (
	"os"
	"strings"

	"github.com/aretw0/rofiflow/internal/cli"
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:   "entry [prompt]",
	Short: "Read one line of text",
	Long:  `Shows an entry box without rows and prints the trimmed text. Empty input exits 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := "entry"
		if len(args) > 0 {
			prompt = strings.Join(args, " ")
		}

		return withEnv(cmd, func(sc *cli.SignalContext, env *cli.Env) (int, error) {
			out := cli.Entry(sc, env, prompt)
			return cli.WriteOutcome(os.Stdout, os.Stderr, styler(), out, verbose(cmd)), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}
