package main

import (
	"fmt"
	"os"

	"github.com/aretw0/rofiflow/internal/cli"
	"github.com/aretw0/rofiflow/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rofiflow",
	Short: "rofiflow drives rofi -dmenu from the command line",
	Long: `rofiflow shows lists, action menus and entry boxes through an external selector
(rofi -dmenu by default) and prints the classified answer.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitError)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("profile", "rofiflow.yaml", "Selector profile (YAML, or JSON with a .json extension)")
	rootCmd.PersistentFlags().String("command", "", `Selector command line, overriding the profile (e.g. "wofi --dmenu")`)
	rootCmd.PersistentFlags().Bool("debug", false, "Log invocations and outcomes to stderr")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Describe every outcome on stderr")
}

// globalOptions reads the persistent flags.
func globalOptions(cmd *cobra.Command) cli.Options {
	profile, _ := cmd.Flags().GetString("profile")
	command, _ := cmd.Flags().GetString("command")
	debug, _ := cmd.Flags().GetBool("debug")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	return cli.Options{
		ProfilePath: profile,
		Command:     command,
		Debug:       debug,
		MetricsAddr: metricsAddr,
	}
}

// withEnv builds the environment and a signal-aware context, runs fn and exits
// with the code it returns.
func withEnv(cmd *cobra.Command, fn func(sc *cli.SignalContext, env *cli.Env) (int, error)) error {
	env, err := cli.NewEnv(globalOptions(cmd))
	if err != nil {
		return err
	}

	sc := cli.NewSignalContext(cmd.Context())
	code, err := fn(sc, env)
	sc.Cancel()
	if cerr := env.Close(); cerr != nil {
		env.Logger.Warn("shutdown failed", "error", cerr)
	}
	if err != nil {
		return err
	}
	if code != cli.ExitOK {
		os.Exit(code)
	}
	return nil
}

func styler() tui.Styler {
	return tui.NewStyler(termenv.NewOutput(os.Stderr).EnvColorProfile())
}

func verbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}
