// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     config
// Description: Typed textkit settings loaded through the foundation config
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	fconfig "github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// EnvPrefix is the prefix for environment overrides (TEXTKIT_LOG_LEVEL).
const EnvPrefix = "TEXTKIT"

// Config holds the complete textkit configuration
type Config struct {
	Log         LogConfig         `toml:"log" yaml:"log"`
	Inflections InflectionsConfig `toml:"inflections" yaml:"inflections"`
	Editor      EditorConfig      `toml:"editor" yaml:"editor"`

	source *fconfig.Config
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// InflectionsConfig extends the built-in inflection tables
type InflectionsConfig struct {
	Uncountable []string          `toml:"uncountable" yaml:"uncountable"`
	Irregular   map[string]string `toml:"irregular" yaml:"irregular"`
}

// EditorConfig holds line editor settings
type EditorConfig struct {
	FileMode FileMode `toml:"file_mode" yaml:"file_mode"`
	// ClosingMarker switches block removal to IndentedCloser(marker).
	ClosingMarker string `toml:"closing_marker" yaml:"closing_marker"`
}

// FileMode wraps os.FileMode for octal strings like "0644"
type FileMode struct {
	os.FileMode
}

// UnmarshalText parses an octal permission string
func (m *FileMode) UnmarshalText(text []byte) error {
	mode, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return err
	}
	if mode > 0777 {
		return strconv.ErrRange
	}
	m.FileMode = os.FileMode(mode)
	return nil
}

// MarshalText formats the mode as a four digit octal string
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte("0" + strconv.FormatUint(uint64(m.FileMode.Perm()), 8)), nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Environment variables
// with the TEXTKIT_ prefix override log settings.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	source, err := fconfig.LoadWithOptions(path, fconfig.LoadOptions{EnvPrefix: EnvPrefix})
	if err != nil {
		return nil, err
	}
	return fromSource(source)
}

// Discover resolves the configuration path. An explicit path wins and must
// exist; otherwise the first existing default location is returned, or ""
// when there is none.
func Discover(explicit string) (string, error) {
	if explicit != "" {
		if !filex.IsFile(explicit) {
			return "", tkerror.Newf("config file not found: %s", explicit).
				WithCode(tkerror.CodeFileNotFound).
				WithOperation("config.Discover").
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultPaths() {
		if filex.IsFile(p) {
			return p, nil
		}
	}
	return "", nil
}

// DefaultPaths lists the locations searched when no path is given.
func DefaultPaths() []string {
	paths := []string{"./textkit.toml", "./textkit.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "textkit", "config.toml"))
	}
	return paths
}

// LoadOrDefault discovers and loads the configuration, falling back to
// Default when no file exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Discover(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func fromSource(source *fconfig.Config) (*Config, error) {
	var cfg Config
	if err := source.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.Log.Level = source.GetString("log.level", cfg.Log.Level)
	cfg.Log.Format = source.GetString("log.format", cfg.Log.Format)
	cfg.source = source
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, tkerror.Wrap(err, "invalid configuration").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", source.FilePath())
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Editor.FileMode.FileMode == 0 {
		c.Editor.FileMode.FileMode = 0644
	}
}

// Validate checks log settings and inflection entries.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return tkerror.Wrap(err, "invalid log level").
			WithCode(tkerror.CodeValidationFailed).
			WithDetail("key", "log.level")
	}
	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return tkerror.Wrap(err, "invalid log format").
			WithCode(tkerror.CodeValidationFailed).
			WithDetail("key", "log.format")
	}
	for singular, plural := range c.Inflections.Irregular {
		if stringx.IsBlank(singular) || stringx.IsBlank(plural) {
			return tkerror.Newf("irregular inflection %q => %q has a blank side", singular, plural).
				WithCode(tkerror.CodeValidationFailed).
				WithDetail("key", "inflections.irregular")
		}
	}
	return nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	if c.source == nil {
		return ""
	}
	return c.source.FilePath()
}

// Inflector builds an inflector extended with the configured tables.
func (c *Config) Inflector() *stringx.Inflector {
	opts := make([]stringx.Option, 0, len(c.Inflections.Irregular)+1)
	if len(c.Inflections.Uncountable) > 0 {
		opts = append(opts, stringx.WithUncountable(c.Inflections.Uncountable...))
	}
	for singular, plural := range c.Inflections.Irregular {
		opts = append(opts, stringx.WithIrregular(singular, plural))
	}
	return stringx.NewInflector(opts...)
}

// EditorOptions returns the line editor options for these settings.
func (c *Config) EditorOptions() []filex.EditorOption {
	opts := []filex.EditorOption{filex.WithFileMode(c.Editor.FileMode.FileMode)}
	if c.Editor.ClosingMarker != "" {
		opts = append(opts, filex.WithClosingFunc(filex.IndentedCloser(c.Editor.ClosingMarker)))
	}
	return opts
}

// Watch reloads the configuration whenever its file changes. onChange
// receives the new configuration; invalid files go to onError and the
// previous configuration stays in effect.
func (c *Config) Watch(ctx context.Context, onChange func(*Config), onError func(error)) error {
	if c.source == nil {
		return tkerror.New("configuration was not loaded from a file").
			WithCode(tkerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}

	return c.source.Watch(ctx, func(_, fresh *fconfig.Config) {
		cfg, err := fromSource(fresh)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if onChange != nil {
			onChange(cfg)
		}
	}, onError)
}
