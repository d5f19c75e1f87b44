// Package loader reads raw configuration values from TOML files and
// environment variables into flat maps keyed by setting name.
package loader

// Loader is the interface for configuration sources.
type Loader interface {
	// Load reads the source and returns its settings.
	Load() (map[string]any, error)
}
