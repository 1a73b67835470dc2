package cmd

import (
	"os"

	"unique-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "unique-checker",
	Short: "Unique item checker",
	Long: `Unique Checker keeps the best copy of every unique item you own.
It checks copied items against your stash and syncs your listed uniques
from the trade website.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		l := logger.NewConsole()
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
