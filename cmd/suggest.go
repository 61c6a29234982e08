package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/passgen"
	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	suggestLength int
	suggestCopy   bool
)

func init() {
	suggestCmd.Flags().IntVarP(&suggestLength, "length", "l", passgen.DefaultLength, "number of characters")
	suggestCmd.Flags().BoolVarP(&suggestCopy, "copy", "c", false, "copy the password to the clipboard as well")
	RootCmd.AddCommand(suggestCmd)
}

func resetSuggestCommandState() {
	suggestLength = passgen.DefaultLength
	suggestCopy = false
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate a random password",
	Long: `Generates a random password from letters, digits and punctuation.
Nothing is stored.

Examples:
  lockbox suggest
  lockbox suggest --length 32`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Generating password of length %d", suggestLength)

		result, err := workflows.Suggest(context.Background(), workflows.SuggestOptions{Length: suggestLength})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Password)
		if suggestCopy {
			if err := copyToClipboard(result.Password); err != nil {
				return Logger.ErrorfAndReturn("Failed to copy to the clipboard: %v", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success.Sprint("✓")+" Copied to the clipboard")
		}
		return nil
	},
}
