// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements automatic configuration file discovery across the
//              working directory, the user configuration directory, and
//              system-wide locations, plus environment-only loading.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	lingoerror "github.com/msto63/lingo/core/error"
)

// DefaultEnvPrefix is the environment variable prefix for configuration
// overrides, e.g. repl.prompt is overridden by LINGO_REPL_PROMPT.
const DefaultEnvPrefix = "LINGO"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the default discovery options: lingo.toml
// or .lingo.toml next to the current directory, then the user configuration
// directory and home dotfile, then /etc/lingo. A missing file is not an
// error; the toolchain runs fine on defaults alone.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lingo"), home)
	}
	paths = append(paths, "/etc/lingo")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"lingo", ".lingo", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
		Required:   false,
	}
}

// Discover automatically discovers and loads a configuration file. When no
// file is found and the options do not require one, an empty configuration
// is returned that still honors environment overrides.
func Discover(options DiscoveryOptions) (*Config, error) {
	defaults := DefaultDiscoveryOptions()
	if len(options.Paths) == 0 {
		options.Paths = defaults.Paths
	}
	if len(options.Filenames) == 0 {
		options.Filenames = defaults.Filenames
	}
	if len(options.Extensions) == 0 {
		options.Extensions = defaults.Extensions
	}
	if options.EnvPrefix == "" {
		options.EnvPrefix = defaults.EnvPrefix
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if loadErr != nil {
			// The file exists but cannot be used, which should never
			// pass silently.
			return nil, lingoerror.Wrap(loadErr, fmt.Sprintf("found config file %s but could not load it", configPath)).
				WithCode(lingoerror.CodeConfigError).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, lingoerror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(searchPaths, ", "))).
			WithCode(lingoerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: options.EnvPrefix,
		watchers:  make([]ChangeHandler, 0),
	}, nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)

				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					return configPath, nil
				}
			}
		}
	}

	return "", lingoerror.New("no configuration file found").
		WithCode(lingoerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all file paths discovery would consider,
// in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}

// LoadWithWatch loads configuration with file watching enabled
func LoadWithWatch(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
		Watch:  true,
	})
}

// LoadFromEnv loads configuration entirely from environment variables.
// Variable names are translated to config keys by stripping the prefix,
// lowercasing, and turning underscores into dots:
// LINGO_REPL_HISTORY_FILE becomes repl.history.file.
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key, value := parts[0], parts[1]

		if envPrefix != "" {
			prefix := strings.ToUpper(envPrefix) + "_"
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}
		if key == "" {
			continue
		}

		configKey := strings.ToLower(strings.ReplaceAll(key, "_", "."))
		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{
		data:      data,
		format:    FormatTOML,
		envPrefix: envPrefix,
		watchers:  make([]ChangeHandler, 0),
	}
}

// parseEnvValue parses environment variable values as bool, int, or float
// where possible, falling back to the raw string
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}

	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}

	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}

	return value
}
