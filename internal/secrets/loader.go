package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Resolve returns the secret value for the given environment key. When the
// plain variable is empty, KEY_FILE is consulted and the referenced file is
// read instead, which is how mounted secret stores expose values. The result
// is always trimmed. An error is returned when neither source yields a value.
func Resolve(key string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v, nil
	}

	file := strings.TrimSpace(os.Getenv(key + "_FILE"))
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", key, file, err)
		}
		v := strings.TrimSpace(string(data))
		if v == "" {
			return "", fmt.Errorf("%s file %q is empty", key, file)
		}
		return v, nil
	}

	return "", fmt.Errorf("%s is not configured", key)
}
