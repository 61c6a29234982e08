package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/configs"
	"github.com/PolarWolf314/lockbox/internal/storage"
	"github.com/PolarWolf314/lockbox/internal/ui"

	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

type configShowOutput struct {
	ConfigPath   string `json:"config_path"`
	ConfigExists bool   `json:"config_exists"`
	StorePath    string `json:"store_path"`
	KeyFile      string `json:"key_file"`
	KDF          string `json:"kdf"`
	Cipher       string `json:"cipher"`
	AuditEnabled bool   `json:"audit_enabled"`
	AuditPath    string `json:"audit_path,omitempty"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the settings lockbox will use",
	Long: `Displays the effective settings after combining flags, environment
variables, the config file and defaults.

Examples:
  lockbox config show
  lockbox config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		path := configs.ConfigPath()

		exists, err := storage.Exists(path)
		if err != nil {
			return err
		}

		config, err := configs.LoadConfigFrom(path)
		if err != nil {
			return err
		}
		s := configs.Resolve(config, overrides())

		output := configShowOutput{
			ConfigPath:   path,
			ConfigExists: exists,
			StorePath:    s.StorePath,
			KeyFile:      s.KeyFile,
			KDF:          s.KDF,
			Cipher:       s.Cipher,
			AuditEnabled: s.AuditEnabled,
			AuditPath:    s.AuditPath,
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			data, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		source := ui.Path.Sprint(output.ConfigPath)
		if !exists {
			source += " " + ui.Muted.Sprint("not found, using defaults")
		}
		keyFile := output.KeyFile
		if keyFile == "" {
			keyFile = ui.Warning.Sprint("not set")
		}
		audit := "disabled"
		if output.AuditEnabled {
			audit = output.AuditPath
		}

		fmt.Fprintln(out, ui.Info.Sprint("Config file:")+" "+source)
		fmt.Fprintln(out, "  Store:    "+ui.Path.Sprint(output.StorePath))
		fmt.Fprintln(out, "  Key file: "+keyFile)
		fmt.Fprintln(out, "  KDF:      "+output.KDF)
		fmt.Fprintln(out, "  Cipher:   "+output.Cipher)
		fmt.Fprintln(out, "  Audit:    "+audit)
		return nil
	},
}
