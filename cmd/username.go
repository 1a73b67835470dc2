package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// usernameCmd shows the configured username.
var usernameCmd = &cobra.Command{
	Use:   "username",
	Short: "Show or set the account name whose items are checked",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(context.Background(), nil)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		username, err := a.service.Username()
		if err != nil {
			return err
		}
		a.logger.Info("Username", zap.String("username", username))
		return nil
	},
}

// usernameSetCmd saves a new username.
var usernameSetCmd = &cobra.Command{
	Use:   "set <account-name>",
	Short: "Set the account name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(context.Background(), nil)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		return a.service.SetUsername(args[0])
	},
}

func init() {
	usernameCmd.AddCommand(usernameSetCmd)
	RootCmd.AddCommand(usernameCmd)
}
