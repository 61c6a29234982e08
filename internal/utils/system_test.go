package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetUsername(t *testing.T) {
	username, err := GetUsername()
	if err != nil {
		t.Fatalf("GetUsername failed: %v", err)
	}
	if username == "" {
		t.Error("Expected non-empty username")
	}
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("No home directory: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"TildeOnly", "~", homeDir},
		{"TildeSlash", "~/keys/master.key", filepath.Join(homeDir, "keys", "master.key")},
		{"Absolute", "/etc/master.key", "/etc/master.key"},
		{"Relative", "master.key", "master.key"},
		{"TildeUser", "~bob/master.key", "~bob/master.key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ExpandHome(tc.input)
			if err != nil {
				t.Fatalf("ExpandHome(%q) failed: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("ExpandHome(%q) = %q, expected %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestTrimLineEnding(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"pw123\n", "pw123"},
		{"pw123\r\n", "pw123"},
		{"pw123", "pw123"},
		{" pw 123 \n", " pw 123 "},
		{"pw123\n\n", "pw123\n"},
		{"", ""},
	}

	for _, tc := range tests {
		if result := TrimLineEnding(tc.input); result != tc.expected {
			t.Errorf("TrimLineEnding(%q) = %q, expected %q", tc.input, result, tc.expected)
		}
	}
}

func TestReadAllFrom(t *testing.T) {
	data, err := ReadAllFrom(strings.NewReader("secret\n"))
	if err != nil {
		t.Fatalf("ReadAllFrom failed: %v", err)
	}
	if string(data) != "secret\n" {
		t.Errorf("Expected %q, got %q", "secret\n", data)
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret(""); got != "(empty)" {
		t.Errorf("Expected (empty), got %q", got)
	}
	if got := MaskSecret("abc"); got != "•••" {
		t.Errorf("Expected three bullets, got %q", got)
	}
	if got := MaskSecret(strings.Repeat("x", 40)); got != strings.Repeat("•", 12) {
		t.Errorf("Expected mask capped at 12, got %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize(1, "account"); got != "account" {
		t.Errorf("Expected account, got %s", got)
	}
	if got := Pluralize(0, "account"); got != "accounts" {
		t.Errorf("Expected accounts, got %s", got)
	}
}
