package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // Env var -> setting name
}

// NewEnvLoader creates a loader for the given env var to setting
// mapping.
func NewEnvLoader(mapping map[string]string) *EnvLoader {
	return &EnvLoader{mapping: mapping}
}

// Load reads the mapped environment variables.
// Note: Empty string values are treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, key := range l.mapping {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			config[key] = ParseValue(val)
		}
	}

	return config, nil
}

// ParseValue attempts to parse the string value into an appropriate type:
// bool, int64, time.Duration, or string.
func ParseValue(s string) any {
	lower := strings.ToLower(s)
	if lower == "true" || lower == "yes" || lower == "on" {
		return true
	}
	if lower == "false" || lower == "no" || lower == "off" {
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}
