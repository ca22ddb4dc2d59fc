// File: watch.go
// Title: Configuration File Watching
// Description: Reloads a configuration file when it changes on disk and
//              notifies a handler with the old and new configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching (polling)
// - 2026-10-17 v0.2.0: Switched to fsnotify, context based lifetime

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// Watch starts watching the configuration file and returns once the watcher
// is registered. Each write, create or rename of the file triggers a reload;
// on success handler is called with a snapshot of the old and the new
// configuration. Reload failures are passed to onError when it is non-nil.
// Watching stops when ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// save via rename keep being observed.
func (c *Config) Watch(ctx context.Context, handler ChangeHandler, onError ...func(error)) error {
	if stringx.IsBlank(c.filePath) {
		return tkerror.New("file path required for watching").
			WithCode(tkerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return tkerror.Wrap(err, "failed to create file watcher").
			WithCode(tkerror.CodeIO).
			WithOperation("config.Watch")
	}

	target := filepath.Clean(c.filePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return tkerror.Wrap(err, "failed to watch config directory").
			WithCode(tkerror.CodeIO).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	report := func(err error) {
		for _, fn := range onError {
			if fn != nil {
				fn(err)
			}
		}
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				oldConfig, newConfig, err := c.reload()
				if err != nil {
					report(err)
					continue
				}
				if handler != nil {
					handler(oldConfig, newConfig)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				report(tkerror.Wrap(err, "file watcher error").
					WithCode(tkerror.CodeIO).
					WithOperation("config.Watch"))
			}
		}
	}()

	return nil
}

// reload re-reads the file and swaps in the new data, returning snapshots
func (c *Config) reload() (*Config, *Config, error) {
	fresh, err := LoadWithOptions(c.filePath, LoadOptions{Format: c.format, EnvPrefix: c.envPrefix})
	if err != nil {
		return nil, nil, tkerror.Wrap(err, "failed to reload config file").
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:      deepCopyMap(c.data),
		raw:       c.raw,
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
	}
	c.data = fresh.data
	c.raw = fresh.raw
	c.mu.Unlock()

	return oldConfig, fresh, nil
}
