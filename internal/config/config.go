package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/islml/kaze/internal/config/loader"
)

// Setting names, shared by the TOML file and the environment mapping.
const (
	KeyTabStop        = "tab_stop"
	KeyMessageTimeout = "message_timeout"
	KeyQuitKey        = "quit_key"
	KeyLogLevel       = "log_level"
	KeyLogFile        = "log_file"
	KeyWatch          = "watch"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "KAZE_CONFIG"

// Tab stop bounds.
const (
	MinTabStop = 1
	MaxTabStop = 16
)

// envMapping maps environment variables to settings.
var envMapping = map[string]string{
	"KAZE_TAB_STOP":        KeyTabStop,
	"KAZE_MESSAGE_TIMEOUT": KeyMessageTimeout,
	"KAZE_QUIT_KEY":        KeyQuitKey,
	"KAZE_LOG_LEVEL":       KeyLogLevel,
	"KAZE_LOG_FILE":        KeyLogFile,
	"KAZE_WATCH":           KeyWatch,
}

// Config holds kaze's settings.
type Config struct {
	// TabStop is the tab width used to render lines.
	TabStop int

	// MessageTimeout is how long a message bar message stays visible.
	MessageTimeout time.Duration

	// QuitKey is the letter that quits with Ctrl.
	QuitKey byte

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFile receives the log. Empty discards it.
	LogFile string

	// Watch enables on-disk change notices for the open file.
	Watch bool

	// Source is the config file that was read, if any.
	Source string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TabStop:        4,
		MessageTimeout: 5 * time.Second,
		QuitKey:        'q',
		LogLevel:       "info",
		Watch:          true,
	}
}

// Load resolves settings from defaults, the TOML file at path, and the
// environment. An empty path falls back to $KAZE_CONFIG; when both are
// empty no file is read.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	sources := make([]loader.Loader, 0, 2)
	if path != "" {
		sources = append(sources, loader.NewTOMLLoader(path))
	}
	sources = append(sources, loader.NewEnvLoader(envMapping))

	cfg := Default()
	cfg.Source = path
	for _, src := range sources {
		values, err := src.Load()
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(values); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply sets every known key in values. Keys are applied in sorted
// order so the first error is deterministic. Unknown keys are ignored.
func (c *Config) Apply(values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.set(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// set assigns one setting.
func (c *Config) set(key string, v any) error {
	var err error
	switch key {
	case KeyTabStop:
		c.TabStop, err = toInt(key, v)
	case KeyMessageTimeout:
		c.MessageTimeout, err = toDuration(key, v)
	case KeyQuitKey:
		var s string
		if s, err = toString(key, v); err == nil {
			c.QuitKey, err = parseQuitKey(s)
		}
	case KeyLogLevel:
		c.LogLevel, err = toString(key, v)
	case KeyLogFile:
		c.LogFile, err = toString(key, v)
	case KeyWatch:
		c.Watch, err = toBool(key, v)
	}
	return err
}

// Validate checks every setting is in range.
func (c *Config) Validate() error {
	if c.TabStop < MinTabStop || c.TabStop > MaxTabStop {
		return &ValidationError{
			Key:     KeyTabStop,
			Message: fmt.Sprintf("must be between %d and %d", MinTabStop, MaxTabStop),
			Value:   c.TabStop,
		}
	}
	if !isASCIILetter(c.QuitKey) {
		return &ValidationError{
			Key:     KeyQuitKey,
			Message: "must be a single ASCII letter",
			Value:   string(rune(c.QuitKey)),
		}
	}
	if isAliasedChord(c.QuitKey) {
		return &ValidationError{
			Key:     KeyQuitKey,
			Message: "Ctrl chord is the same byte as Backspace, Tab, Enter or line feed",
			Value:   string(rune(c.QuitKey)),
		}
	}
	if c.MessageTimeout < 0 {
		return &ValidationError{
			Key:     KeyMessageTimeout,
			Message: "must not be negative",
			Value:   c.MessageTimeout,
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{
			Key:     KeyLogLevel,
			Message: "must be one of debug, info, warn, error",
			Value:   c.LogLevel,
		}
	}
	return nil
}

// QuitKeyName returns the quit chord as shown to the user, e.g. "Ctrl-Q".
func (c *Config) QuitKeyName() string {
	return "Ctrl-" + strings.ToUpper(string(rune(c.QuitKey)))
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isAliasedChord reports whether Ctrl+b sends the byte of an ordinary
// key: ^H Backspace, ^I Tab, ^J line feed, ^M Enter.
func isAliasedChord(b byte) bool {
	return strings.IndexByte("hijm", b|0x20) >= 0
}

// parseQuitKey accepts a single ASCII letter and lowercases it.
func parseQuitKey(s string) (byte, error) {
	if len(s) != 1 || !isASCIILetter(s[0]) {
		return 0, &ValidationError{Key: KeyQuitKey, Message: "must be a single ASCII letter", Value: s}
	}
	return strings.ToLower(s)[0], nil
}

func toInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Key: key, Expected: "integer", Actual: fmt.Sprintf("%T", v)}
}

// toDuration accepts a Go duration or a whole number of seconds.
func toDuration(key string, v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case int64:
		return time.Duration(d) * time.Second, nil
	case int:
		return time.Duration(d) * time.Second, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, &ValidationError{Key: key, Message: "invalid duration", Value: d}
		}
		return parsed, nil
	}
	return 0, &TypeError{Key: key, Expected: "duration", Actual: fmt.Sprintf("%T", v)}
}

func toString(key string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", &TypeError{Key: key, Expected: "string", Actual: fmt.Sprintf("%T", v)}
}

func toBool(key string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	}
	return false, &TypeError{Key: key, Expected: "bool", Actual: fmt.Sprintf("%T", v)}
}
