// Package cmd defines the biller command-line interface. The root command
// starts the interactive menu; list and create cover scripted use.
package cmd

import (
	"context"
	"fmt"
	"os"

	"biller/config"
	"biller/console"
	"biller/domain/services"
	"biller/domain/utils"
	"biller/storage"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "biller",
	Short: "biller is a menu-driven console account and billing manager.",
	Long: `biller manages simple monetary accounts from the terminal: creating
accounts, depositing and withdrawing funds, purchasing services and paying
bills. State persists across runs in flat files under the configured data
directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		directory := services.NewDirectory(storage.NewFileStore(cfg), cfg.DefaultBalance)
		app := console.NewApp(cfg, directory, cmd.InOrStdin(), cmd.OutOrStdout())
		return app.Run(cmd.Context())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered accounts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		directory := services.NewDirectory(storage.NewFileStore(cfg), cfg.DefaultBalance)
		style := console.NewStyle(cmd.OutOrStdout())
		style.PrintAccountsTable(directory.List())
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <name> [balance]",
	Short: "Create a new account non-interactively.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		directory := services.NewDirectory(storage.NewFileStore(cfg), cfg.DefaultBalance)

		balance := directory.DefaultBalance()
		if len(args) == 2 {
			parsed, err := services.ParseAmount(args[1])
			if err != nil {
				return err
			}
			balance = parsed
		}

		id, account, err := directory.Create(args[0], balance)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created account %d (%s) with balance %s\n",
			id, account.Name, utils.FormatCurrency(account.Balance))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
}

// Execute runs the CLI under the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
