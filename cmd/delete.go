package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/workflows"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <service> <account>",
	Aliases: []string{"rm"},
	Short:   "Remove the password stored for an account",
	Long: `Removes the password stored for an account at a service. A service left
with no accounts is removed as well. Deleting an account that is not stored
changes nothing.

Examples:
  lockbox delete email bob`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, account := args[0], args[1]
		Logger.Infof("Starting delete command for %s at %s", account, service)

		spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Removing password...")
		defer cleanup()

		result, err := workflows.Delete(context.Background(), workflows.DeleteOptions{
			Settings: settings,
			Service:  service,
			Account:  account,
		})
		if err != nil {
			return err
		}

		if !result.Removed {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No password stored for " + ui.Highlight.Sprint(account) +
				" at " + ui.Highlight.Sprint(service) + ", nothing to delete"
			return nil
		}

		msg := ui.Success.Sprint("✓") + " Deleted password for " + ui.Highlight.Sprint(account) +
			" at " + ui.Highlight.Sprint(service)
		if result.ServiceRemoved {
			msg += fmt.Sprintf("\n%s %s has no accounts left and was removed", ui.Info.Sprint("→"), ui.Highlight.Sprint(service))
		}
		spinner.FinalMSG = msg
		return nil
	},
}
