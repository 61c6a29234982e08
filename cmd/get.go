package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/utils"
	"github.com/PolarWolf314/lockbox/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	getCopy bool
	getRaw  bool
)

func init() {
	getCmd.Flags().BoolVarP(&getCopy, "copy", "c", false, "copy the password to the clipboard instead of printing it")
	getCmd.Flags().BoolVarP(&getRaw, "raw", "r", false, "print only the password, for use in scripts")
	RootCmd.AddCommand(getCmd)
}

func resetGetCommandState() {
	getCopy = false
	getRaw = false
}

var getCmd = &cobra.Command{
	Use:   "get <service> <account>",
	Short: "Show the password stored for an account",
	Long: `Shows the password stored for an account at a service.

Examples:
  lockbox get email bob
  lockbox get email bob --copy
  PASSWORD=$(lockbox get email bob --raw)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, account := args[0], args[1]
		Logger.Infof("Starting get command for %s at %s", account, service)
		out := cmd.OutOrStdout()

		result, err := workflows.Get(context.Background(), workflows.GetOptions{
			Settings: settings,
			Service:  service,
			Account:  account,
		})
		if err != nil {
			return err
		}

		if !result.Found {
			if getRaw {
				return fmt.Errorf("no password stored for %s at %s", account, service)
			}
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" No password stored for "+ui.Highlight.Sprint(account)+
				" at "+ui.Highlight.Sprint(service))
			return nil
		}

		switch {
		case getCopy:
			if err := copyToClipboard(result.Secret); err != nil {
				return Logger.ErrorfAndReturn("Failed to copy to the clipboard: %v", err)
			}
			Logger.Debugf("Copied %s to clipboard", utils.MaskSecret(result.Secret))
			fmt.Fprintln(out, ui.Success.Sprint("✓")+" Copied password for "+ui.Highlight.Sprint(account)+
				" at "+ui.Highlight.Sprint(service)+" to the clipboard")
		case getRaw:
			fmt.Fprintln(out, result.Secret)
		default:
			fmt.Fprintln(out, ui.Highlight.Sprint(service)+" / "+ui.Highlight.Sprint(account)+": "+ui.Secret.Sprint(result.Secret))
		}
		return nil
	},
}
