package main

import (
	"os"

	"github.com/aretw0/rofiflow/internal/cli"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions --item ITEM label...",
	Short: "Choose an action to apply to one item",
	Long: `Shows the action labels followed by a [cancel] row and prints the chosen
action. Typed text is accepted as a custom action.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, _ := cmd.Flags().GetString("item")
		prompt, _ := cmd.Flags().GetString("prompt")
		if prompt == "" {
			prompt = item
		}

		return withEnv(cmd, func(sc *cli.SignalContext, env *cli.Env) (int, error) {
			out := cli.Actions(sc, env, prompt, item, args)
			return cli.WriteOutcome(os.Stdout, os.Stderr, styler(), out, verbose(cmd)), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
	actionsCmd.Flags().String("item", "", "Item the actions apply to")
	actionsCmd.Flags().StringP("prompt", "p", "", "Prompt (defaults to the item)")
	_ = actionsCmd.MarkFlagRequired("item")
}
