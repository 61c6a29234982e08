package cmd

import (
	logger "github.com/PolarWolf314/lockbox/internal/logging"

	"github.com/spf13/cobra"
)

// configCmd manages the lockbox config file. It replaces the root
// PersistentPreRunE so a broken config file can still be inspected and
// rewritten.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lockbox configuration",
	Long: `Provides commands for managing the lockbox config file.

The config file lives at ~/.config/lockbox/config.toml, or wherever
LOCKBOX_CONFIG points. Values are resolved in this order: command line
flags, then LOCKBOX_STORE and LOCKBOX_KEY_FILE, then the config file, then
built-in defaults.

Examples:
  # Remember your key file and store location
  lockbox config init --key-file ~/.lockbox.key --store ~/passwords.json

  # Show the settings lockbox will use
  lockbox config show`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing config %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func resetConfigCommandState() {
	resetConfigInitState()
	resetConfigShowState()
}
