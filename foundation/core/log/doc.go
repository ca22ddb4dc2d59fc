// Package log provides structured, leveled logging for textkit.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with immutable With* clones, four
//              output formats (json, text, console, logfmt) and a timer for
//              measuring operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Dropped async buffering and request/user context, added NewNop
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatConsole})
//	logger = logger.WithName("filex").WithField("path", "config/routes.rb")
//	logger.Debug("line inserted", log.Int("index", 3))
//
//	timer := logger.StartTimer("recipe.apply")
//	defer timer.Stop()
package log
