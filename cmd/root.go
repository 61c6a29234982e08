package cmd

import (
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/codec"
	"github.com/PolarWolf314/lockbox/internal/configs"
	"github.com/PolarWolf314/lockbox/internal/keys"
	logger "github.com/PolarWolf314/lockbox/internal/logging"
	"github.com/PolarWolf314/lockbox/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose     bool
	debug       bool
	keyFileFlag string
	storeFlag   string
	kdfFlag     string
	cipherFlag  string

	Logger logger.Logger

	// settings holds the resolved configuration for the running command.
	settings configs.Settings

	RootCmd = &cobra.Command{
		Use:   "lockbox",
		Short: "Lockbox - a local encrypted password store",
		Long: `Lockbox keeps passwords in a single encrypted file, organised by service
and account. The encryption key is derived from a key file of your choice:
any file works, as long as you supply the same bytes every time.

Examples:
  # Store a password (prompts without echo)
  lockbox add email bob --key-file ~/.lockbox.key

  # Read it back
  lockbox get email bob --key-file ~/.lockbox.key

  # Remember the key file so you don't have to repeat it
  lockbox config init --key-file ~/.lockbox.key`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)

			return resolveSettings()
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, figure.NewFigure("lockbox", "", true).String())
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("lockbox --help")+" to see available commands")
		},
	}
)

func init() {
	flags := RootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&debug, "debug", "d", false, "enable debug output")
	flags.StringVarP(&keyFileFlag, "key-file", "k", "", "path to the master key file")
	flags.StringVarP(&storeFlag, "store", "s", "", "path to the encrypted store (default \""+configs.DefaultStorePath+"\")")
	flags.StringVar(&kdfFlag, "kdf", "", fmt.Sprintf("key derivation %v", keys.Names()))
	flags.StringVar(&cipherFlag, "cipher", "", fmt.Sprintf("store cipher %v", codec.Names()))
}

// resolveSettings loads the config file and merges it with flags and
// environment into settings.
func resolveSettings() error {
	Logger.Debugf("Loading config from %s", configs.ConfigPath())
	config, err := configs.LoadConfig()
	if err != nil {
		return err
	}

	settings = configs.Resolve(config, overrides())
	Logger.Debugf("Store: %s, kdf: %s, cipher: %s, audit: %t", settings.StorePath, settings.KDF, settings.Cipher, settings.AuditEnabled)
	return nil
}

func overrides() configs.Overrides {
	return configs.Overrides{
		StorePath: storeFlag,
		KeyFile:   keyFileFlag,
		KDF:       kdfFlag,
		Cipher:    cipherFlag,
	}
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	keyFileFlag = ""
	storeFlag = ""
	kdfFlag = ""
	cipherFlag = ""
	settings = configs.Settings{}
	resetAddCommandState()
	resetGetCommandState()
	resetListCommandState()
	resetSuggestCommandState()
	resetLogCommandState()
	resetConfigCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag so one test's
// flags do not leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
