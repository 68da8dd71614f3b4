// Package config provides the configuration system for snarkyed.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by the CLI)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← SNARKYED_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← $XDG_CONFIG_HOME/snarkyed/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//		return err
//	}
//	step := cfg.Editor.PageStep
//
// A missing config file is not an error. A malformed one is reported as
// *ParseError; settings that decode but make no sense are reported as
// *ValidationError.
package config
