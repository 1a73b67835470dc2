package cmd

import (
	"context"
	"errors"
	"os"

	"unique-checker/core/reconcile"
	"unique-checker/feature/uniques"
	"unique-checker/feature/uniques/mods"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkFile   string
	checkDryRun bool
)

// checkCmd checks one copied item.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a copied unique item against your stash",
	Long: `Reads item text as copied from the game (Ctrl+C on an item) and keeps it
if it is better than the stored one.

Examples:
  # From a file
  unique-checker check --file item.txt

  # From stdin, report only
  xclip -o | unique-checker check --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clipboard := uniques.ReaderClipboard{Path: checkFile, Reader: os.Stdin}
		a, err := bootstrap(ctx, clipboard)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		raw, err := clipboard.ReadClipboard()
		if err != nil {
			return err
		}

		outcome, err := a.service.Check(ctx, raw, reconcile.ReconcileOptions{DryRun: checkDryRun})
		if errors.Is(err, mods.ErrNotUnique) {
			return nil
		}
		if err != nil {
			return err
		}

		if checkDryRun {
			a.logger.Info("Dry-run mode: No changes were made.",
				zap.String("action", string(outcome.Action)),
				zap.Float64("delta", outcome.Delta),
			)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Read item text from a file instead of stdin")
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "Report the decision without writing")
	RootCmd.AddCommand(checkCmd)
}
