// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML configuration files with
//              environment overrides, typed getters, struct decoding and
//              change notification.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: fsnotify based Watch, Decode, removed discovery and validation

/*
Package config provides configuration loading for textkit tools.

# Loading

	cfg, err := config.LoadWithOptions("textkit.toml", config.LoadOptions{EnvPrefix: "TEXTKIT"})
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")
	words := cfg.GetStringSlice("inflections.uncountable")

Keys use dot notation. When an env prefix is set, TEXTKIT_LOG_LEVEL overrides
log.level for the scalar getters.

# Decoding

Decode fills a struct from the original document using the struct tags of the
file's format (toml tags for TOML, yaml tags for YAML):

	var s Settings
	if err := cfg.Decode(&s); err != nil {
		return err
	}

# Watching

Watch reloads the file whenever it changes on disk and calls the handler with
the old and new configuration until the context is cancelled:

	err := cfg.Watch(ctx, func(old, new *config.Config) {
		logger.Info("config reloaded")
	})
*/
package config
