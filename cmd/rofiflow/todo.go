package main

import (
	"os"

	"github.com/aretw0/rofiflow/internal/cli"
	"github.com/aretw0/rofiflow/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "A to-do list in rofi",
}

var todoRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the to-do list",
	Long: `Select an item to toggle it, the blank row or [add] to add one, [delete] to
remove one and [exit] (or Escape) to quit. Typed text is added as a new item.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cli.NewStore(storeOptions(cmd))
		if err != nil {
			return err
		}
		defer closeStore()

		return withEnv(cmd, func(sc *cli.SignalContext, env *cli.Env) (int, error) {
			return cli.ExitOK, cli.RunTodo(sc, env, store)
		})
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the to-do list as markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := cli.NewStore(storeOptions(cmd))
		if err != nil {
			return err
		}
		defer closeStore()

		var render func(string) (string, error)
		if raw, _ := cmd.Flags().GetBool("raw"); !raw {
			if render, err = tui.NewRenderer(0); err != nil {
				return err
			}
		}
		return cli.ListTodo(cmd.Context(), store, os.Stdout, render)
	},
}

func storeOptions(cmd *cobra.Command) cli.StoreOptions {
	kind, _ := cmd.Flags().GetString("store")
	path, _ := cmd.Flags().GetString("path")
	addr, _ := cmd.Flags().GetString("redis-addr")
	password, _ := cmd.Flags().GetString("redis-password")
	db, _ := cmd.Flags().GetInt("redis-db")
	list, _ := cmd.Flags().GetString("list")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	return cli.StoreOptions{
		Kind:          kind,
		Path:          path,
		RedisAddr:     addr,
		RedisPassword: password,
		RedisDB:       db,
		List:          list,
		TTL:           ttl,
	}
}

func init() {
	rootCmd.AddCommand(todoCmd)
	todoCmd.AddCommand(todoRunCmd, todoListCmd)

	todoCmd.PersistentFlags().String("store", cli.StoreFile, "Store backend: memory, file or redis")
	todoCmd.PersistentFlags().String("path", "", "JSON file for the file store (default .rofiflow/todo.json)")
	todoCmd.PersistentFlags().String("redis-addr", "localhost:6379", "Redis address")
	todoCmd.PersistentFlags().String("redis-password", "", "Redis password")
	todoCmd.PersistentFlags().Int("redis-db", 0, "Redis database")
	todoCmd.PersistentFlags().String("list", "", "Redis list name")
	todoCmd.PersistentFlags().Duration("ttl", 0, "Expire the Redis list after this long without writes")
	todoListCmd.Flags().Bool("raw", false, "Print markdown without rendering")
}
