package cmd

import (
	"context"

	"unique-checker/feature/backup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneKeep int

// backupCmd is the parent command for snapshot operations.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore stash snapshots in object storage",
}

func withBackup(run func(ctx context.Context, svc *backup.Service, l *zap.Logger, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		a, err := bootstrap(ctx, nil)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc, err := a.backupService()
		if err != nil {
			return err
		}
		return run(ctx, svc, a.logger, args)
	}
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot of every stored item",
	RunE: withBackup(func(ctx context.Context, svc *backup.Service, l *zap.Logger, args []string) error {
		obj, err := svc.Export(ctx)
		if err != nil {
			return err
		}
		l.Info("Snapshot written", zap.String("key", obj.Key), zap.Int("entries", obj.Entries))
		return nil
	}),
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, oldest first",
	RunE: withBackup(func(ctx context.Context, svc *backup.Service, l *zap.Logger, args []string) error {
		objects, err := svc.List(ctx)
		if err != nil {
			return err
		}
		for _, obj := range objects {
			l.Info(obj.Key, zap.Int64("size", obj.Size), zap.Time("modified", obj.LastModified))
		}
		return nil
	}),
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <key>",
	Short: "Restore a snapshot; better stored items are kept",
	Args:  cobra.ExactArgs(1),
	RunE: withBackup(func(ctx context.Context, svc *backup.Service, l *zap.Logger, args []string) error {
		summary, err := svc.Restore(ctx, args[0])
		if err != nil {
			return err
		}
		l.Info("Snapshot restored", zap.Stringer("summary", summary))
		return nil
	}),
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest snapshots",
	RunE: withBackup(func(ctx context.Context, svc *backup.Service, l *zap.Logger, args []string) error {
		removed, err := svc.Prune(ctx, pruneKeep)
		if err != nil {
			return err
		}
		l.Info("Snapshots removed", zap.Strings("keys", removed))
		return nil
	}),
}

func init() {
	backupPruneCmd.Flags().IntVar(&pruneKeep, "keep", 5, "Number of newest snapshots to keep")

	backupCmd.AddCommand(backupExportCmd, backupListCmd, backupRestoreCmd, backupPruneCmd)
	RootCmd.AddCommand(backupCmd)
}
