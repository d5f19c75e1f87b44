package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets every kaze variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for env := range envMapping {
		t.Setenv(env, "")
	}
	t.Setenv(EnvConfig, "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "kaze.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	if c.TabStop != 4 {
		t.Errorf("TabStop = %d, want 4", c.TabStop)
	}
	if c.MessageTimeout != 5*time.Second {
		t.Errorf("MessageTimeout = %v, want 5s", c.MessageTimeout)
	}
	if c.QuitKey != 'q' {
		t.Errorf("QuitKey = %q, want q", c.QuitKey)
	}
	if c.LogLevel != "info" || c.LogFile != "" || !c.Watch {
		t.Errorf("unexpected defaults %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *c != *Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
tab_stop = 8
message_timeout = "2s"
quit_key = "X"
log_level = "debug"
log_file = "/tmp/kaze.log"
watch = false
unknown = "ignored"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		TabStop:        8,
		MessageTimeout: 2 * time.Second,
		QuitKey:        'x',
		LogLevel:       "debug",
		LogFile:        "/tmp/kaze.log",
		Watch:          false,
		Source:         path,
	}
	if *c != want {
		t.Errorf("Load() = %+v, want %+v", *c, want)
	}
}

func TestLoad_TimeoutSeconds(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "message_timeout = 7\n")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.MessageTimeout != 7*time.Second {
		t.Errorf("MessageTimeout = %v, want 7s", c.MessageTimeout)
	}
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "tab_stop = 2\n")
	t.Setenv(EnvConfig, path)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.TabStop != 2 || c.Source != path {
		t.Errorf("expected file from %s to apply, got %+v", EnvConfig, c)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "tab_stop = 2\nwatch = true\n")
	t.Setenv("KAZE_TAB_STOP", "6")
	t.Setenv("KAZE_WATCH", "0")
	t.Setenv("KAZE_MESSAGE_TIMEOUT", "1500ms")
	t.Setenv("KAZE_QUIT_KEY", "w")
	t.Setenv("KAZE_LOG_LEVEL", "warn")
	t.Setenv("KAZE_LOG_FILE", "/var/log/kaze.log")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.TabStop != 6 {
		t.Errorf("TabStop = %d, want 6", c.TabStop)
	}
	if c.Watch {
		t.Error("Watch should be false")
	}
	if c.MessageTimeout != 1500*time.Millisecond {
		t.Errorf("MessageTimeout = %v, want 1.5s", c.MessageTimeout)
	}
	if c.QuitKey != 'w' || c.LogLevel != "warn" || c.LogFile != "/var/log/kaze.log" {
		t.Errorf("unexpected settings %+v", c)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "tab_stop = [\n")

	_, err := Load(path)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if pe.Path != path {
		t.Errorf("Path = %q, want %q", pe.Path, path)
	}
}

func TestLoad_RejectsAliasedQuitKey(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "quit_key = \"m\"\n")

	// Ctrl-M arrives as '\r', so Enter would quit.
	_, err := Load(path)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Key != KeyQuitKey {
		t.Fatalf("expected quit_key validation error, got %v", err)
	}
}

func TestLoad_TypeMismatch(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "tab_stop = \"wide\"\n")

	_, err := Load(path)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatch, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"tab stop zero", func(c *Config) { c.TabStop = 0 }, KeyTabStop},
		{"tab stop too wide", func(c *Config) { c.TabStop = 17 }, KeyTabStop},
		{"quit key digit", func(c *Config) { c.QuitKey = '1' }, KeyQuitKey},
		{"quit key non-ascii", func(c *Config) { c.QuitKey = 0xe9 }, KeyQuitKey},
		{"quit key enter", func(c *Config) { c.QuitKey = 'm' }, KeyQuitKey},
		{"quit key tab", func(c *Config) { c.QuitKey = 'i' }, KeyQuitKey},
		{"quit key backspace", func(c *Config) { c.QuitKey = 'H' }, KeyQuitKey},
		{"quit key line feed", func(c *Config) { c.QuitKey = 'j' }, KeyQuitKey},
		{"negative timeout", func(c *Config) { c.MessageTimeout = -time.Second }, KeyMessageTimeout},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, KeyLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)

			err := c.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var ve *ValidationError
			if errors.As(err, &ve) && ve.Key != tt.key {
				t.Errorf("Key = %q, want %q", ve.Key, tt.key)
			}
		})
	}
}

func TestValidate_Bounds(t *testing.T) {
	for _, n := range []int{MinTabStop, MaxTabStop} {
		c := Default()
		c.TabStop = n
		if err := c.Validate(); err != nil {
			t.Errorf("tab stop %d should be valid: %v", n, err)
		}
	}

	c := Default()
	c.MessageTimeout = 0
	if err := c.Validate(); err != nil {
		t.Errorf("zero timeout should be valid: %v", err)
	}
}

func TestApply_QuitKey(t *testing.T) {
	tests := []struct {
		in      string
		want    byte
		wantErr bool
	}{
		{"q", 'q', false},
		{"Z", 'z', false},
		{"qq", 0, true},
		{"", 0, true},
		{"1", 0, true},
	}

	for _, tt := range tests {
		c := Default()
		err := c.Apply(map[string]any{KeyQuitKey: tt.in})
		if (err != nil) != tt.wantErr {
			t.Errorf("quit_key %q: error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && c.QuitKey != tt.want {
			t.Errorf("quit_key %q: got %q, want %q", tt.in, c.QuitKey, tt.want)
		}
	}
}

func TestQuitKeyName(t *testing.T) {
	c := Default()
	if got := c.QuitKeyName(); got != "Ctrl-Q" {
		t.Errorf("QuitKeyName() = %q, want Ctrl-Q", got)
	}
}
