package main

import (
	"os"

	"github.com/aretw0/rofiflow/internal/cli"
	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick [items...]",
	Short: "Choose one item from a list",
	Long: `Shows the items (arguments, or stdin lines when there are none) followed by a
[cancel] row. The chosen item, or the typed text, is printed on stdout.
Exits 1 when cancelled and 2 when the selector fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, _ := cmd.Flags().GetString("prompt")

		items := args
		if len(items) == 0 {
			lines, err := cli.ReadLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
			items = lines
		}

		return withEnv(cmd, func(sc *cli.SignalContext, env *cli.Env) (int, error) {
			out := cli.Pick(sc, env, prompt, items)
			return cli.WriteOutcome(os.Stdout, os.Stderr, styler(), out, verbose(cmd)), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().StringP("prompt", "p", "pick", "Prompt shown next to the entry field")
}
