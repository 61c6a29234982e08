package configs

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/lockbox/internal/utils"
)

// Environment variables consulted during resolution.
const (
	EnvConfig  = "LOCKBOX_CONFIG"
	EnvStore   = "LOCKBOX_STORE"
	EnvKeyFile = "LOCKBOX_KEY_FILE"
)

type UserSettings struct {
	UserConfigsPath string
	Username        string
}

var UserLockboxSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// No HOME or XDG_CONFIG_HOME; keep the config next to the store.
		configDir = "."
	}

	username, err := utils.GetUsername()
	if err != nil {
		username = "unknown"
	}

	// This is independent of the working directory, so it is ok to init here
	UserLockboxSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "lockbox"),
		Username:        username,
	}
}

// ConfigPath returns the config file location, honouring LOCKBOX_CONFIG.
func ConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(UserLockboxSettings.UserConfigsPath, "config.toml")
}

// Overrides carries values given on the command line. Empty fields are
// unset.
type Overrides struct {
	StorePath string
	KeyFile   string
	KDF       string
	Cipher    string
}

// Settings are the effective values for one invocation.
type Settings struct {
	StorePath    string
	KeyFile      string
	KDF          string
	Cipher       string
	AuditEnabled bool
	AuditPath    string
}

// Resolve merges flags, environment and config file values, in that order
// of precedence, over the built-in defaults.
func Resolve(cfg *Config, o Overrides) Settings {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	s := Settings{
		StorePath:    first(o.StorePath, os.Getenv(EnvStore), cfg.Store.Path, DefaultStorePath),
		KeyFile:      first(o.KeyFile, os.Getenv(EnvKeyFile), cfg.Store.KeyFile),
		KDF:          first(o.KDF, cfg.Store.KDF, DefaultKDF),
		Cipher:       first(o.Cipher, cfg.Store.Cipher, DefaultCipher),
		AuditEnabled: cfg.Audit.Enabled,
		AuditPath:    cfg.Audit.Path,
	}
	if s.AuditEnabled && s.AuditPath == "" {
		s.AuditPath = s.StorePath + ".audit.jsonl"
	}
	return s
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
