package cmd

import (
	"context"
	"fmt"
	"os"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/passgen"
	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/utils"
	"github.com/PolarWolf314/lockbox/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	addPassword string
	addGenerate bool
	addLength   int
)

func init() {
	addCmd.Flags().StringVarP(&addPassword, "password", "p", "", "password to store (prompted for when omitted)")
	addCmd.Flags().BoolVarP(&addGenerate, "generate", "g", false, "generate a random password and store it")
	addCmd.Flags().IntVarP(&addLength, "length", "l", passgen.DefaultLength, "length of the generated password")
	RootCmd.AddCommand(addCmd)
}

func resetAddCommandState() {
	addPassword = ""
	addGenerate = false
	addLength = passgen.DefaultLength
}

var addCmd = &cobra.Command{
	Use:   "add <service> <account>",
	Short: "Store a password for an account",
	Long: `Stores a password for an account at a service, replacing any password
already stored there.

The password is taken from --password, generated with --generate, read from
standard input when it is piped, or otherwise prompted for without echo.

Examples:
  lockbox add email bob
  lockbox add email bob --generate --length 24
  echo -n 'hunter2' | lockbox add email bob`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, account := args[0], args[1]
		Logger.Infof("Starting add command for %s at %s", account, service)

		secret, generated, err := readSecret(cmd)
		if err != nil {
			return err
		}
		Logger.Debugf("Password to store: %s", utils.MaskSecret(secret))
		if secret == "" {
			Logger.Warnf("Storing an empty password for %s at %s", account, service)
		}

		spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Storing password...")
		defer cleanup()

		result, err := workflows.Add(context.Background(), workflows.AddOptions{
			Settings: settings,
			Service:  service,
			Account:  account,
			Secret:   secret,
		})
		if err != nil {
			return err
		}

		verb := "Stored"
		if result.Overwrote {
			verb = "Updated"
		}
		msg := ui.Success.Sprint("✓") + " " + verb + " password for " + ui.Highlight.Sprint(result.Account) +
			" at " + ui.Highlight.Sprint(result.Service) + " in " + ui.Path.Sprint(result.StorePath)
		if generated {
			msg += "\n" + ui.Info.Sprint("→") + " Generated password: " + ui.Secret.Sprint(secret)
		}
		spinner.FinalMSG = msg
		return nil
	},
}

// readSecret picks the password source for add. The second return reports
// whether the password was generated.
func readSecret(cmd *cobra.Command) (string, bool, error) {
	if cmd.Flags().Changed("password") {
		if addGenerate {
			return "", false, lerrors.Validation("password", "--password and --generate cannot be used together")
		}
		Logger.Debugf("Using password from --password flag")
		return addPassword, false, nil
	}

	if addGenerate {
		Logger.Debugf("Generating password of length %d", addLength)
		secret, err := passgen.Suggest(addLength)
		return secret, true, err
	}

	if in := cmd.InOrStdin(); in != os.Stdin || !utils.IsTerminal() {
		Logger.Debugf("Reading password from standard input")
		data, err := utils.ReadAllFrom(in)
		if err != nil {
			return "", false, fmt.Errorf("reading password from stdin: %w", err)
		}
		return utils.TrimLineEnding(string(data)), false, nil
	}

	first, err := utils.ReadPassword("Password: ")
	if err != nil {
		return "", false, err
	}
	second, err := utils.ReadPassword("Confirm password: ")
	if err != nil {
		return "", false, err
	}
	if string(first) != string(second) {
		return "", false, lerrors.Validation("password", "passwords do not match")
	}
	return string(first), false, nil
}
