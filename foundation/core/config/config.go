// File: config.go
// Title: Core Configuration Implementation
// Description: Implements the Config type: loading and parsing TOML and YAML
//              documents, dotted-key access with environment overrides and
//              struct decoding.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Added Decode and GetStringMap, dropped request context and caches

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	raw       []byte
	filePath  string
	format    Format
	envPrefix string
}

// ChangeHandler is called when a watched configuration file changes
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values for top-level keys
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, tkerror.New("config file path cannot be empty").
			WithCode(tkerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := tkerror.CodeConfigError
		if os.IsNotExist(err) {
			code = tkerror.CodeFileNotFound
		}
		return nil, tkerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config file").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		raw:       content,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string with the specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config from string").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, raw: []byte(content), format: format}, nil
}

// DetectFormat determines the configuration format from a file extension.
// Unknown extensions are treated as TOML.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&data); err != nil {
			return nil, tkerror.Wrap(err, "TOML parse error").
				WithCode(tkerror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, tkerror.Wrap(err, "YAML parse error").
				WithCode(tkerror.CodeInvalidInput).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, tkerror.Newf("unsupported format: %s", format).
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("config.parseContent")
	}

	return data, nil
}

func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// Decode decodes the original document into v using the tags of the
// document's format. Environment overrides are not applied.
func (c *Config) Decode(v interface{}) error {
	c.mu.RLock()
	raw, format := c.raw, c.format
	c.mu.RUnlock()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, v)
	default:
		_, err = toml.Decode(string(raw), v)
	}
	if err != nil {
		return tkerror.Wrap(err, "failed to decode configuration").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}
	return nil
}

// GetString returns a string value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}
	if value := c.get(key); value != nil {
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", value)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	if env, ok := c.lookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(env)); err == nil {
			return i
		}
	}
	switch v := c.get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// GetBool returns a boolean value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	if env, ok := c.lookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(env)); err == nil {
			return b
		}
	}
	switch v := c.get(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// GetDuration returns a duration value with optional default.
// Strings are parsed with time.ParseDuration, numbers are seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	var fallback time.Duration
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}
	if env, ok := c.lookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(env)); err == nil {
			return d
		}
	}
	switch v := c.get(key).(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	}
	return fallback
}

// GetStringSlice returns a string slice with optional default.
// An environment override is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if env, ok := c.lookupEnv(key); ok {
		parts := strings.Split(env, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				result = append(result, p)
			}
		}
		return result
	}
	switch v := c.get(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, fmt.Sprintf("%v", item))
		}
		return result
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// GetStringMap returns a table of string values. Non-string values are
// formatted with %v. A missing key yields an empty map.
func (c *Config) GetStringMap(key string) map[string]string {
	result := make(map[string]string)
	if table, ok := c.get(key).(map[string]interface{}); ok {
		for k, v := range table {
			if s, ok := v.(string); ok {
				result[k] = s
			} else {
				result[k] = fmt.Sprintf("%v", v)
			}
		}
	}
	return result
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	if _, ok := c.lookupEnv(key); ok {
		return true
	}
	return c.get(key) != nil
}

// Set sets a value at runtime. Intermediate tables are created as needed.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// Keys returns all top-level keys in sorted order
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the document format
func (c *Config) Format() Format {
	return c.format
}

func (c *Config) get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) lookupEnv(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	return os.LookupEnv(c.envKey(key))
}

// envKey converts log.level with prefix TEXTKIT to TEXTKIT_LOG_LEVEL
func (c *Config) envKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return strings.ToUpper(strings.TrimSuffix(c.envPrefix, "_")) + "_" + envKey
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]interface{}); ok {
			dst[k] = deepCopyMap(nested)
		} else {
			dst[k] = v
		}
	}
	return dst
}
