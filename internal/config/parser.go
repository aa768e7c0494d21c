package config

import (
	"fmt"
	"strings"
)

// Parse converts config file lines into a key/value map.
// Blank lines and comment lines are ignored; a line without an equals sign
// is an error. Duplicate keys resolve to the last occurrence.
func Parse(lines []string) (map[string]string, error) {
	result := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config: line %d is not a key=value pair: %q", i+1, line)
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("config: line %d has an empty key", i+1)
		}

		result[key] = strings.TrimSpace(parts[1])
	}

	return result, nil
}
