package util

import (
	"fmt"
	"os"
	"strings"
)

// LoadSQL reads a SQL template from disk. The scoring query is owned by the
// database team and shipped as a file, not embedded in the binary.
func LoadSQL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load SQL file %s: %w", path, err)
	}
	sql := strings.TrimSpace(string(data))
	if sql == "" {
		return "", fmt.Errorf("SQL file %s is empty", path)
	}
	return sql, nil
}
