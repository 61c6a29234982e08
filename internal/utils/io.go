package utils

import (
	"fmt"
	"io"
	"strings"
)

// ReadAllFrom reads r to EOF.
func ReadAllFrom(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return data, nil
}

// TrimLineEnding removes a single trailing "\n" or "\r\n". Other whitespace
// is part of the value.
func TrimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
