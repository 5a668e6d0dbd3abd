// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements polling-based monitoring of configuration files so
//              long-running sessions pick up edits without a restart.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"time"

	lingoerror "github.com/msto63/lingo/core/error"
	lingolog "github.com/msto63/lingo/core/log"
)

// watchInterval is the polling interval for configuration file changes
const watchInterval = time.Second

// startWatching polls the configuration file for modification time changes
// until StopWatching is called. It runs in its own goroutine.
func (c *Config) startWatching() {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.RLock()
		active := c.watching
		path := c.filePath
		lastModified := c.lastModified
		c.mu.RUnlock()

		if !active {
			return
		}

		fileInfo, err := os.Stat(path)
		if err != nil {
			// The file may have been deleted or moved; keep polling in
			// case it comes back.
			continue
		}

		if fileInfo.ModTime().After(lastModified) {
			if err := c.reload(); err != nil {
				lingolog.GetDefault().WarnWithErr("config reload failed", err,
					lingolog.Field("path", path))
				continue
			}
			lingolog.Debug("config reloaded", lingolog.Field("path", path))
		}
	}
}

// reload re-reads the configuration file, swaps in the new data, and
// notifies registered change handlers
func (c *Config) reload() error {
	c.mu.RLock()
	path := c.filePath
	format := c.format
	c.mu.RUnlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return lingoerror.Wrap(err, "could not re-read config file").
			WithCode(lingoerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", path)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return lingoerror.Wrap(err, "could not parse config file during reload").
			WithCode(lingoerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", path).
			WithDetail("format", format.String())
	}

	c.mu.Lock()
	oldData := c.data
	c.data = newData
	if fileInfo, err := os.Stat(path); err == nil {
		c.lastModified = fileInfo.ModTime()
	}
	handlers := append([]ChangeHandler(nil), c.watchers...)
	c.mu.Unlock()

	if len(handlers) == 0 {
		return nil
	}

	// Handlers get detached snapshots: the old map is no longer shared
	// once swapped out, the new one is copied so later reloads cannot
	// race against handler reads.
	oldConfig := &Config{data: oldData, format: format}
	newConfig := &Config{data: deepCopy(newData), format: format}

	for _, handler := range handlers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
