// Package config provides configuration management for the lingo toolchain.
//
// Package: config
// Title: Lingo Configuration Management
// Description: This package loads configuration from TOML and YAML files with
//              automatic format detection, environment variable overrides,
//              file discovery across standard locations, rule-based
//              validation, and polling-based hot reload for long-running
//              sessions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support
//
// Features:
// - TOML and YAML formats with detection from the file extension
// - Dot notation access to nested values (repl.prompt, engine.max_source_length)
// - Environment overrides with the LINGO_ prefix (repl.prompt -> LINGO_REPL_PROMPT)
// - Discovery of lingo.toml/.lingo.toml in the working directory, the user
//   config directory, the home directory, and /etc/lingo
// - Defaults merging with dotted keys, rule-based validation
// - Polling file watch with change handlers for interactive sessions
//
// Usage:
//   import lingoconfig "github.com/msto63/lingo/core/config"
//
//   // Discover a config file, or fall back to defaults and environment
//   cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//   if err != nil {
//     return err
//   }
//
//   // Typed access with defaults
//   prompt := cfg.GetString("repl.prompt", ">> ")
//   maxLen := cfg.GetInt("engine.max_source_length", 65536)
//   level := cfg.S("log.level", "info")
//
//   // Validation against rules
//   result := cfg.Validate(config.ValidationRules{
//     "log.level": {Pattern: "^(trace|debug|info|warn|error)$"},
//     "engine.max_source_length": {Type: "int", Min: 1},
//   })
//   if !result.Valid {
//     return result.Err()
//   }
//
//   // Hot reload for long-running sessions
//   cfg, err = config.LoadWithWatch("lingo.toml")
//   cfg.OnChange(func(oldCfg, newCfg *config.Config) {
//     // react to changed values
//   })
package config
