package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/utils"
	"github.com/PolarWolf314/lockbox/internal/workflows"

	"github.com/spf13/cobra"
)

var listServicesOnly bool

func init() {
	listCmd.Flags().BoolVar(&listServicesOnly, "services", false, "list service names only")
	RootCmd.AddCommand(listCmd)
}

func resetListCommandState() {
	listServicesOnly = false
}

var listCmd = &cobra.Command{
	Use:     "list [service]",
	Aliases: []string{"ls"},
	Short:   "List stored services and accounts",
	Long: `Lists the services and accounts in the store. Passwords are never shown.

Examples:
  lockbox list
  lockbox list email`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := ""
		if len(args) == 1 {
			service = args[0]
		}
		Logger.Infof("Starting list command")
		out := cmd.OutOrStdout()

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			Settings: settings,
			Service:  service,
		})
		if err != nil {
			return err
		}

		if len(result.Services) == 0 {
			if service != "" {
				fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" No accounts stored for "+ui.Highlight.Sprint(service))
			} else {
				fmt.Fprintln(out, ui.Info.Sprint("→")+" The store is empty. Add a password with "+ui.Code.Sprint("lockbox add <service> <account>"))
			}
			return nil
		}

		for _, s := range result.Services {
			if listServicesOnly {
				fmt.Fprintln(out, s.Name)
				continue
			}
			fmt.Fprintln(out, ui.Highlight.Sprint(s.Name)+" "+ui.Muted.Sprint(fmt.Sprintf("%d %s", len(s.Accounts), utils.Pluralize(len(s.Accounts), "account"))))
			for _, account := range s.Accounts {
				fmt.Fprintln(out, "  "+account)
			}
		}

		if !listServicesOnly {
			summary := fmt.Sprintf("%d %s across %d %s", result.Accounts, utils.Pluralize(result.Accounts, "account"),
				len(result.Services), utils.Pluralize(len(result.Services), "service"))
			if !result.WrittenAt.IsZero() {
				summary += ", last saved " + result.WrittenAt.Local().Format("2006-01-02 15:04:05")
			}
			fmt.Fprintln(out, ui.Muted.Sprint(summary))
		}
		return nil
	},
}
