package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/lockbox/internal/configs"
	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/storage"
	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/utils"

	"github.com/spf13/cobra"
)

var (
	configInitForce     bool
	configInitNoAudit   bool
	configInitAuditPath string
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configInitNoAudit, "no-audit", false, "disable the audit log")
	configInitCmd.Flags().StringVar(&configInitAuditPath, "audit-path", "", "where to write the audit log (default: next to the store)")
	configCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
	configInitNoAudit = false
	configInitAuditPath = ""
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file from the given flags",
	Long: `Writes the config file using --key-file, --store, --kdf and --cipher.
Paths are stored as absolute paths so lockbox works from any directory.

Examples:
  lockbox config init --key-file ~/.lockbox.key
  lockbox config init --key-file ~/.lockbox.key --store ~/passwords.json --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configs.ConfigPath()
		Logger.Infof("Writing config to %s", path)

		exists, err := storage.Exists(path)
		if err != nil {
			return err
		}
		if exists && !configInitForce {
			return lerrors.Validation("config", fmt.Sprintf("%s already exists, use --force to overwrite it", path))
		}

		config, err := buildConfig()
		if err != nil {
			return err
		}
		if err := config.Validate(); err != nil {
			return err
		}
		if config.Store.KeyFile != "" {
			if ok, _ := storage.Exists(config.Store.KeyFile); !ok {
				Logger.WarnfAlways("Key file %s does not exist yet", config.Store.KeyFile)
			}
		}
		if err := configs.SaveConfig(config); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Success.Sprint("✓")+" Wrote config to "+ui.Path.Sprint(path))
		if config.Store.KeyFile == "" {
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" No key file set. Pass "+ui.Flag.Sprint("--key-file")+" to every command or set LOCKBOX_KEY_FILE")
		}
		return nil
	},
}

// buildConfig starts from defaults and applies the command line flags.
func buildConfig() (*configs.Config, error) {
	config := configs.DefaultConfig()

	if keyFileFlag != "" {
		abs, err := absPath(keyFileFlag)
		if err != nil {
			return nil, err
		}
		config.Store.KeyFile = abs
	}
	if storeFlag != "" {
		abs, err := absPath(storeFlag)
		if err != nil {
			return nil, err
		}
		config.Store.Path = abs
	}
	if kdfFlag != "" {
		config.Store.KDF = kdfFlag
	}
	if cipherFlag != "" {
		config.Store.Cipher = cipherFlag
	}

	config.Audit.Enabled = !configInitNoAudit
	if configInitAuditPath != "" {
		abs, err := absPath(configInitAuditPath)
		if err != nil {
			return nil, err
		}
		config.Audit.Path = abs
	}
	return config, nil
}

func absPath(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}
