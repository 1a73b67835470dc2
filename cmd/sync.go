package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"unique-checker/feature/uniques/trade"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncCategories []string

// syncCmd pulls listed uniques from the trade website.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync your listed uniques from the trade website",
	Long: `Searches the trade website for every unique you have listed, category by
category, and keeps each one that beats the stored copy.

Requests are throttled and retried until they succeed; press Ctrl+C to stop.

Examples:
  # Every category
  unique-checker sync

  # Only rings and body armours
  unique-checker sync --category ring --category "Body Armour"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := make([]trade.Category, 0, len(syncCategories))
		for _, name := range syncCategories {
			c, ok := trade.LookupCategory(name)
			if !ok {
				return fmt.Errorf("unknown category %q, see 'unique-checker categories'", name)
			}
			categories = append(categories, c)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx, nil)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		results, err := a.service.Sync(ctx, categories)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				continue
			}
			a.logger.Info("Category result",
				zap.String("category", r.Category.Label),
				zap.Int("inserted", r.Summary.Inserted),
				zap.Int("updated", r.Summary.Updated),
				zap.Int("kept", r.Summary.Kept),
				zap.Int("discarded", r.Summary.Discarded),
			)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sync interrupted: %w", err)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d categories failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringArrayVarP(&syncCategories, "category", "c", nil, "Category label or key to sync (repeatable, default all)")
	RootCmd.AddCommand(syncCmd)
}
