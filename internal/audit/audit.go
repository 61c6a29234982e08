package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/lockbox/internal/configs"
	"github.com/google/uuid"
)

// Entry represents a single audit log entry. Secrets are never recorded.
type Entry struct {
	ID        string `json:"id"`      // Random UUID.
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	User      string `json:"user"`    // OS user performing the action.
	Operation string `json:"op"`      // Operation name.
	Service   string `json:"service"` // Service affected.
	Account   string `json:"account"` // Account affected.

	// Optional fields depending on operation.
	Overwrote      bool `json:"overwrote,omitempty"`       // For add.
	ServiceRemoved bool `json:"service_removed,omitempty"` // For delete.
}

// Log appends an entry to the audit log at path.
// If logging fails the entry is dropped; operations should not fail just
// because audit logging failed. An empty path disables logging.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.User == "" && configs.UserLockboxSettings != nil {
		entry.User = configs.UserLockboxSettings.Username
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// Write entry with newline.
	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log at path.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip malformed entries.
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// Filter returns the entries matching service and account. Empty values
// match everything.
func Filter(entries []Entry, service, account string) []Entry {
	var out []Entry
	for _, e := range entries {
		if service != "" && e.Service != service {
			continue
		}
		if account != "" && e.Account != account {
			continue
		}
		out = append(out, e)
	}
	return out
}
