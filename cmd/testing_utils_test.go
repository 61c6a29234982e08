package cmd

// This file provides functions for setting up an isolated store and key
// file, and for running commands with captured output.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/lockbox/internal/configs"
)

// testEnv describes an isolated lockbox setup inside a temp directory.
type testEnv struct {
	Dir        string
	KeyFile    string
	StorePath  string
	ConfigPath string
}

// setupTestEnvironment creates a key file and points the config, store and
// audit log into a temp directory. Environment overrides are cleared.
func setupTestEnvironment(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	env := testEnv{
		Dir:        dir,
		KeyFile:    filepath.Join(dir, "master.key"),
		StorePath:  filepath.Join(dir, "passwords.json"),
		ConfigPath: filepath.Join(dir, "config", "config.toml"),
	}

	if err := os.WriteFile(env.KeyFile, []byte("correct horse battery staple"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	t.Setenv(configs.EnvConfig, env.ConfigPath)
	t.Setenv(configs.EnvStore, "")
	t.Setenv(configs.EnvKeyFile, "")
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(ResetGlobalState)
	return env
}

// runCommand executes the root command with args and returns everything it
// wrote to stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCommandWithInput(t, "", args...)
}

// runCommandWithInput is runCommand with stdin set to input.
func runCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetIn(strings.NewReader(input))
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
	})

	err := RootCmd.Execute()
	return buf.String(), err
}

// storeArgs returns the flags that select env's store and key file.
func (env testEnv) storeArgs(args ...string) []string {
	return append(args, "--store", env.StorePath, "--key-file", env.KeyFile)
}

// readFile returns the contents of path, failing the test if it cannot be read.
func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}
