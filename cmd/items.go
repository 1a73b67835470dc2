package cmd

import (
	"context"
	"fmt"

	"unique-checker/feature/uniques/trade"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemsCmd lists stored items.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the stored best copy of every unique",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := bootstrap(ctx, nil)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		records, err := a.service.Entries(ctx)
		if err != nil {
			return err
		}

		for _, rec := range records {
			a.logger.Info(rec.Item.Name,
				zap.Strings("mods", rec.Item.ExplicitMods),
				zap.Any("values", rec.ExplicitModValues),
			)
		}
		a.logger.Info("Stored items", zap.Int("count", len(records)))
		return nil
	},
}

// categoriesCmd lists the trade categories.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the trade categories in sync order",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range trade.Categories() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", c.Label, c.Key)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(itemsCmd)
	RootCmd.AddCommand(categoriesCmd)
}
